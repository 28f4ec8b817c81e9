// Package etree renders wordtracker reports as XML.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/wordtracker"
)

// Ensure ReportWriter implements wordtracker.ReportWriter at compile time.
var _ wordtracker.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes reports as an indented XML document.
type ReportWriter struct {
	indent int
}

// NewReportWriter creates a new ReportWriter indenting by two spaces.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{indent: 2}
}

// WriteReport writes r as a <words> document with one <word> per entry.
func (rw *ReportWriter) WriteReport(w io.Writer, r *wordtracker.Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("words")
	root.CreateAttr("sort", string(r.Order))
	root.CreateAttr("detail", string(r.Detail))
	root.CreateAttr("count", strconv.Itoa(len(r.Words)))

	for _, word := range r.Words {
		el := root.CreateElement("word")
		el.CreateAttr("text", word.Text)
		if r.Detail == wordtracker.DetailAll {
			el.CreateAttr("frequency", strconv.Itoa(word.TotalFrequency()))
		}
		for _, file := range word.Files() {
			fileEl := el.CreateElement("file")
			fileEl.CreateAttr("name", file)
			if r.Detail == wordtracker.DetailFiles {
				continue
			}
			for _, line := range word.Occurrences[file] {
				fileEl.CreateElement("line").SetText(strconv.Itoa(line))
			}
		}
	}

	doc.Indent(rw.indent)
	_, err := doc.WriteTo(w)
	return err
}
