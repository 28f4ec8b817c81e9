package wordtracker

import "iter"

// Iterator is a single-pass traversal over the elements of a Tree.
//
// An iterator reflects the tree's shape when it was created. Mutating the
// tree while an iterator is in use leaves the iterator's output undefined.
type Iterator[E any] interface {
	// HasNext reports whether Next will return another element.
	// It has no side effects.
	HasNext() bool

	// Next returns the next element and advances the iterator.
	// Returns EEXHAUSTED if there are no elements left.
	Next() (E, error)
}

// Values adapts it to a sequence for use with range or slices.Collect.
// The sequence consumes the iterator.
func Values[E any](it Iterator[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for it.HasNext() {
			elem, err := it.Next()
			if err != nil || !yield(elem) {
				return
			}
		}
	}
}

func exhausted[E any]() (E, error) {
	var zero E
	return zero, Errorf(EEXHAUSTED, "iterator has no more elements")
}

// inOrderIterator keeps the ancestors still waiting to be emitted and a
// cursor at the subtree to descend into next.
type inOrderIterator[E any] struct {
	stack  []*Node[E]
	cursor *Node[E]
}

func (it *inOrderIterator[E]) HasNext() bool {
	return it.cursor != nil || len(it.stack) > 0
}

func (it *inOrderIterator[E]) Next() (E, error) {
	if !it.HasNext() {
		return exhausted[E]()
	}
	for it.cursor != nil {
		it.stack = append(it.stack, it.cursor)
		it.cursor = it.cursor.left
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.cursor = n.right
	return n.elem, nil
}

type preOrderIterator[E any] struct {
	stack []*Node[E]
}

func (it *preOrderIterator[E]) HasNext() bool {
	return len(it.stack) > 0
}

func (it *preOrderIterator[E]) Next() (E, error) {
	if !it.HasNext() {
		return exhausted[E]()
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	// Right goes first so that left is popped first.
	if n.right != nil {
		it.stack = append(it.stack, n.right)
	}
	if n.left != nil {
		it.stack = append(it.stack, n.left)
	}
	return n.elem, nil
}

type postOrderFrame[E any] struct {
	node     *Node[E]
	expanded bool
}

// postOrderIterator is lazy: a frame is expanded (its children pushed above
// it) the first time it reaches the top, and emitted the second time.
type postOrderIterator[E any] struct {
	stack []postOrderFrame[E]
}

func (it *postOrderIterator[E]) HasNext() bool {
	return len(it.stack) > 0
}

func (it *postOrderIterator[E]) Next() (E, error) {
	if !it.HasNext() {
		return exhausted[E]()
	}
	for {
		top := &it.stack[len(it.stack)-1]
		if top.expanded {
			n := top.node
			it.stack = it.stack[:len(it.stack)-1]
			return n.elem, nil
		}
		top.expanded = true
		n := top.node
		if n.right != nil {
			it.stack = append(it.stack, postOrderFrame[E]{node: n.right})
		}
		if n.left != nil {
			it.stack = append(it.stack, postOrderFrame[E]{node: n.left})
		}
	}
}
