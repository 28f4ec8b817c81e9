package wordtracker

import (
	"cmp"
	"iter"
	"reflect"
)

// Tree is an unbalanced binary search tree of unique elements ordered by a
// comparison function. Elements comparing equal are never stored twice.
//
// A Tree is not safe for concurrent use.
type Tree[E any] struct {
	root *Node[E]
	size int
	cmp  func(a, b E) int
}

// New returns a tree of naturally ordered elements, seeded with elems.
// Seeds that duplicate an earlier seed are skipped.
func New[E cmp.Ordered](elems ...E) *Tree[E] {
	return NewFunc(cmp.Compare[E], elems...)
}

// NewFunc returns a tree ordered by compare, seeded with elems.
// Absent or duplicate seeds are skipped.
func NewFunc[E any](compare func(a, b E) int, elems ...E) *Tree[E] {
	t := &Tree[E]{cmp: compare}
	for _, elem := range elems {
		_, _ = t.Add(elem)
	}
	return t
}

// Len returns the number of elements in the tree.
func (t *Tree[E]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[E]) IsEmpty() bool { return t.size == 0 }

// Clear drops every element.
func (t *Tree[E]) Clear() {
	t.root = nil
	t.size = 0
}

// Root returns the root node. Returns EEMPTY if the tree is empty.
func (t *Tree[E]) Root() (*Node[E], error) {
	if t.root == nil {
		return nil, Errorf(EEMPTY, "tree is empty")
	}
	return t.root, nil
}

// Height returns the number of edges on the longest path from the root to
// a leaf. An empty tree has height -1 and a single node has height 0.
func (t *Tree[E]) Height() int {
	return t.root.height()
}

// Contains reports whether an element equal to entry is stored.
// Returns EINVALID if entry is absent.
func (t *Tree[E]) Contains(entry E) (bool, error) {
	n, err := t.Search(entry)
	if err != nil {
		return false, err
	}
	return n != nil, nil
}

// Search returns the node holding the element equal to entry, or nil if
// there is none. Returns EINVALID if entry is absent.
func (t *Tree[E]) Search(entry E) (*Node[E], error) {
	if isAbsent(entry) {
		return nil, Errorf(EINVALID, "cannot search for an absent element")
	}
	n := t.root
	for n != nil {
		c := t.cmp(entry, n.elem)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n, nil
		}
	}
	return nil, nil
}

// Add inserts entry and reports whether it was attached. It returns false
// and leaves the tree untouched when an equal element is already present.
// Returns EINVALID if entry is absent.
func (t *Tree[E]) Add(entry E) (bool, error) {
	if isAbsent(entry) {
		return false, Errorf(EINVALID, "cannot add an absent element")
	}
	if t.root == nil {
		t.root = newNode(entry)
		t.size++
		return true, nil
	}
	if !t.root.add(entry, t.cmp) {
		return false, nil
	}
	t.size++
	return true, nil
}

// RemoveMin unlinks the smallest element and returns it. The second result
// is false if the tree was empty.
func (t *Tree[E]) RemoveMin() (E, bool) {
	var parent *Node[E]
	n := t.root
	if n == nil {
		var zero E
		return zero, false
	}
	for n.left != nil {
		parent, n = n, n.left
	}
	if parent == nil {
		t.root = n.right
	} else {
		parent.left = n.right
	}
	t.size--
	return n.elem, true
}

// RemoveMax unlinks the largest element and returns it. The second result
// is false if the tree was empty.
func (t *Tree[E]) RemoveMax() (E, bool) {
	var parent *Node[E]
	n := t.root
	if n == nil {
		var zero E
		return zero, false
	}
	for n.right != nil {
		parent, n = n, n.right
	}
	if parent == nil {
		t.root = n.left
	} else {
		parent.right = n.left
	}
	t.size--
	return n.elem, true
}

// InOrder returns an iterator over the elements in ascending order.
func (t *Tree[E]) InOrder() Iterator[E] {
	return &inOrderIterator[E]{cursor: t.root}
}

// PreOrder returns an iterator visiting each node before its left subtree
// and then its right subtree.
func (t *Tree[E]) PreOrder() Iterator[E] {
	it := &preOrderIterator[E]{}
	if t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it
}

// PostOrder returns an iterator visiting the left subtree, then the right
// subtree, then the node itself.
func (t *Tree[E]) PostOrder() Iterator[E] {
	it := &postOrderIterator[E]{}
	if t.root != nil {
		it.stack = append(it.stack, postOrderFrame[E]{node: t.root})
	}
	return it
}

// All returns a sequence of the elements in ascending order.
func (t *Tree[E]) All() iter.Seq[E] {
	return Values(t.InOrder())
}

// isAbsent reports whether v is a nil interface or a nil value of a
// nillable kind.
func isAbsent[E any](v E) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
