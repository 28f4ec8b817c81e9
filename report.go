package wordtracker

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Detail selects how much of each word a report shows.
type Detail string

// Detail constants for Report.
const (
	DetailFiles Detail = "files" // files the word occurs in
	DetailLines Detail = "lines" // files and line numbers
	DetailAll   Detail = "all"   // files, line numbers and total frequency
)

// SortOrder selects the order of words in a report.
type SortOrder string

// SortOrder constants for Report.
const (
	SortAlphabetical SortOrder = "alpha"
	SortByFrequency  SortOrder = "frequency" // most frequent first
	SortByFiles      SortOrder = "files"     // most files first
)

// Report is a drained, sorted view of the index ready for rendering.
// Words are shared with the tree and must not be used after the tree is
// mutated again.
type Report struct {
	Detail Detail
	Order  SortOrder
	Words  []*Word
}

// NewReport drains tree in ascending order and sorts the words by order.
func NewReport(tree *Tree[*Word], detail Detail, order SortOrder) (*Report, error) {
	switch detail {
	case DetailFiles, DetailLines, DetailAll:
	default:
		return nil, Errorf(EINVALID, "unknown report detail %q", detail)
	}
	words := slices.Collect(tree.All())
	if err := SortWords(words, order); err != nil {
		return nil, err
	}
	return &Report{Detail: detail, Order: order, Words: words}, nil
}

// SortWords sorts words in place. The sort is stable, so words that tie on
// the chosen key keep their relative order.
func SortWords(words []*Word, order SortOrder) error {
	switch order {
	case SortAlphabetical, "":
		slices.SortStableFunc(words, CompareWords)
	case SortByFrequency:
		slices.SortStableFunc(words, func(a, b *Word) int {
			return cmp.Compare(b.TotalFrequency(), a.TotalFrequency())
		})
	case SortByFiles:
		slices.SortStableFunc(words, func(a, b *Word) int {
			return cmp.Compare(len(b.Occurrences), len(a.Occurrences))
		})
	default:
		return Errorf(EINVALID, "unknown sort order %q", order)
	}
	return nil
}

// Title returns the heading printed above the report.
func (r *Report) Title() string {
	switch r.Order {
	case SortByFrequency:
		return "Words sorted by total frequency:"
	case SortByFiles:
		return "Words sorted by number of files:"
	default:
		return "Words in alphabetical order:"
	}
}

// ReportWriter renders a report.
type ReportWriter interface {
	WriteReport(w io.Writer, r *Report) error
}

var _ ReportWriter = (*TextWriter)(nil)

// TextWriter renders reports as indented plain text.
type TextWriter struct{}

// NewTextWriter creates a new TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// WriteReport writes the report title followed by one block per word.
func (tw *TextWriter) WriteReport(w io.Writer, r *Report) error {
	_, err := io.WriteString(w, FormatReport(r))
	return err
}

// FormatReport formats a report as plain text.
func FormatReport(r *Report) string {
	var b strings.Builder
	b.WriteString(r.Title())
	b.WriteString("\n")
	for _, w := range r.Words {
		b.WriteString(w.Text)
		if r.Detail == DetailAll {
			fmt.Fprintf(&b, " (frequency: %d)", w.TotalFrequency())
		}
		b.WriteString("\n")
		for _, file := range w.Files() {
			if r.Detail == DetailFiles {
				fmt.Fprintf(&b, "  %s\n", file)
				continue
			}
			fmt.Fprintf(&b, "  %s -> lines: %s\n", file, formatLines(w.Occurrences[file]))
		}
	}
	return b.String()
}

func formatLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = strconv.Itoa(line)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
