package wordtracker

// WordFilter is a probabilistic set used to skip tree searches for words
// that have certainly not been seen. Test may return false positives but
// never false negatives.
type WordFilter interface {
	Add(word string)
	Test(word string) bool
}

// Indexer records word occurrences into a tree of Words. On a hit the
// stored record is mutated in place; on a miss a new record is inserted.
type Indexer struct {
	Tree *Tree[*Word]

	// Filter is optional. When set it must contain every word in Tree;
	// call Prime after replacing Tree.
	Filter WordFilter
}

// NewIndexer returns an Indexer over tree with an optional filter, primed
// with the words already in tree.
func NewIndexer(tree *Tree[*Word], filter WordFilter) *Indexer {
	ix := &Indexer{Tree: tree, Filter: filter}
	ix.Prime()
	return ix
}

// Prime adds every word currently in the tree to the filter.
func (ix *Indexer) Prime() {
	if ix.Filter == nil {
		return
	}
	for w := range ix.Tree.All() {
		ix.Filter.Add(w.Text)
	}
}

// Reset empties the tree. A filter that can be reset is reset too; any
// other filter keeps its entries, which only costs extra searches.
func (ix *Indexer) Reset() {
	ix.Tree.Clear()
	if r, ok := ix.Filter.(interface{ Reset() }); ok {
		r.Reset()
	}
}

// Record adds one occurrence of text at line of filename.
func (ix *Indexer) Record(text, filename string, line int) error {
	if text == "" {
		return Errorf(EINVALID, "word text required")
	}
	if ix.Filter == nil || ix.Filter.Test(text) {
		n, err := ix.Tree.Search(&Word{Text: text})
		if err != nil {
			return err
		}
		if n != nil {
			n.Element().AddOccurrence(filename, line)
			return nil
		}
	}
	w := NewWord(text)
	w.AddOccurrence(filename, line)
	added, err := ix.Tree.Add(w)
	if err != nil {
		return err
	}
	if !added {
		// The filter was not primed with this word.
		n, _ := ix.Tree.Search(w)
		n.Element().AddOccurrence(filename, line)
	}
	if ix.Filter != nil {
		ix.Filter.Add(text)
	}
	return nil
}

// IndexSource records every token of src and returns how many were
// recorded. Sources carrying an error are skipped.
func (ix *Indexer) IndexSource(src *Source) (int, error) {
	if src.Err != nil {
		return 0, nil
	}
	for i, tok := range src.Tokens {
		if err := ix.Record(tok.Text, src.Path, tok.Line); err != nil {
			return i, err
		}
	}
	return len(src.Tokens), nil
}
