package wordtracker

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Word is an occurrence record: a word and the line numbers where it occurs,
// grouped by file. Words are ordered by Text alone.
type Word struct {
	Text string `json:"text" yaml:"text"`

	// Line numbers per file, in the order they were encountered.
	// Repeats are kept.
	Occurrences map[string][]int `json:"occurrences" yaml:"occurrences"`
}

// NewWord returns a Word with no occurrences.
func NewWord(text string) *Word {
	return &Word{
		Text:        text,
		Occurrences: make(map[string][]int),
	}
}

// Validate returns an error if the word contains invalid fields.
func (w *Word) Validate() error {
	if w.Text == "" {
		return Errorf(EINVALID, "word text required")
	}
	return nil
}

// AddOccurrence records that the word occurs on line of filename.
func (w *Word) AddOccurrence(filename string, line int) {
	if w.Occurrences == nil {
		w.Occurrences = make(map[string][]int)
	}
	w.Occurrences[filename] = append(w.Occurrences[filename], line)
}

// TotalFrequency returns the number of occurrences across all files.
func (w *Word) TotalFrequency() int {
	total := 0
	for _, lines := range w.Occurrences {
		total += len(lines)
	}
	return total
}

// Files returns the names of the files the word occurs in, sorted.
func (w *Word) Files() []string {
	return slices.Sorted(maps.Keys(w.Occurrences))
}

// Lines returns the line numbers recorded for filename.
func (w *Word) Lines(filename string) []int {
	return w.Occurrences[filename]
}

// Compare orders words lexicographically by text.
func (w *Word) Compare(other *Word) int {
	return strings.Compare(w.Text, other.Text)
}

func (w *Word) String() string {
	var b strings.Builder
	b.WriteString(w.Text)
	b.WriteString(":")
	for _, file := range w.Files() {
		fmt.Fprintf(&b, " %s -> %v", file, w.Occurrences[file])
	}
	return b.String()
}

// CompareWords orders words by text. It is the ordering used by NewIndex.
func CompareWords(a, b *Word) int {
	return a.Compare(b)
}

// NewIndex returns an empty tree of words ordered by text.
func NewIndex() *Tree[*Word] {
	return NewFunc(CompareWords)
}
