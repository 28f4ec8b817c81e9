package wordtracker

import "context"

// Repository persists the whole word index between runs.
//
// Implementations store the pre-order sequence of the tree's words.
// Adding that sequence to an empty tree rebuilds the identical shape.
type Repository interface {
	// Load returns the persisted index, or an empty index if nothing has
	// been saved yet. Returns EINVALID if the stored data is corrupt.
	Load(ctx context.Context) (*Tree[*Word], error)

	// Save replaces the persisted index with tree.
	Save(ctx context.Context, tree *Tree[*Word]) error

	// Clear removes the persisted index.
	Clear(ctx context.Context) error
}

// Snapshot returns the words of tree in pre-order, the order in which they
// must be re-added to reproduce the tree.
func Snapshot(tree *Tree[*Word]) []*Word {
	words := make([]*Word, 0, tree.Len())
	for w := range Values(tree.PreOrder()) {
		words = append(words, w)
	}
	return words
}

// Restore rebuilds an index from words in pre-order.
// Returns EINVALID if a word is invalid or repeated.
func Restore(words []*Word) (*Tree[*Word], error) {
	tree := NewIndex()
	for _, w := range words {
		if w == nil {
			return nil, Errorf(EINVALID, "snapshot contains an empty record")
		}
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if w.Occurrences == nil {
			w.Occurrences = make(map[string][]int)
		}
		added, err := tree.Add(w)
		if err != nil {
			return nil, err
		}
		if !added {
			return nil, Errorf(EINVALID, "snapshot contains duplicate word %q", w.Text)
		}
	}
	return tree, nil
}
