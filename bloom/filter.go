// Package bloom provides a probabilistic word set backed by a Bloom filter.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/wordtracker"
)

// Ensure Filter implements wordtracker.WordFilter at compile time.
var _ wordtracker.WordFilter = (*Filter)(nil)

// Filter wraps a Bloom filter used to skip index searches for new words.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected words
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a word to the filter.
func (f *Filter) Add(word string) {
	f.f.AddString(word)
}

// Test returns true if the word might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(word string) bool {
	return f.f.TestString(word)
}

// Reset removes every word from the filter.
func (f *Filter) Reset() {
	f.f.ClearAll()
}

// EstimatedCount returns the approximate number of words in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
