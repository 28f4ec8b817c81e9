package wordtracker

// Node is a single cell of a Tree. It owns its children exclusively; nil
// marks an absent child. Nodes carry no parent pointer.
type Node[E any] struct {
	elem        E
	left, right *Node[E]
}

func newNode[E any](elem E) *Node[E] {
	return &Node[E]{elem: elem}
}

// Element returns the element stored in the node.
func (n *Node[E]) Element() E { return n.elem }

// Left returns the left child, or nil.
func (n *Node[E]) Left() *Node[E] { return n.left }

// Right returns the right child, or nil.
func (n *Node[E]) Right() *Node[E] { return n.right }

func (n *Node[E]) height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.height(), n.right.height())
}

// add inserts elem below n and reports whether a node was attached.
func (n *Node[E]) add(elem E, cmp func(a, b E) int) bool {
	c := cmp(elem, n.elem)
	if c < 0 {
		if n.left == nil {
			n.left = newNode(elem)
			return true
		}
		return n.left.add(elem, cmp)
	}
	if c > 0 {
		if n.right == nil {
			n.right = newNode(elem)
			return true
		}
		return n.right.add(elem, cmp)
	}
	return false
}
