package mock

import "github.com/fwojciec/wordtracker"

var _ wordtracker.WordFilter = (*WordFilter)(nil)

// WordFilter is a mock implementation of wordtracker.WordFilter.
type WordFilter struct {
	AddFn  func(word string)
	TestFn func(word string) bool
}

func (f *WordFilter) Add(word string) {
	f.AddFn(word)
}

func (f *WordFilter) Test(word string) bool {
	return f.TestFn(word)
}
