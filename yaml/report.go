// Package yaml renders wordtracker reports as YAML.
package yaml

import (
	"io"

	"github.com/fwojciec/wordtracker"
	"gopkg.in/yaml.v3"
)

// Ensure ReportWriter implements wordtracker.ReportWriter at compile time.
var _ wordtracker.ReportWriter = (*ReportWriter)(nil)

type reportDoc struct {
	Sort   wordtracker.SortOrder `yaml:"sort"`
	Detail wordtracker.Detail    `yaml:"detail"`
	Words  []wordDoc             `yaml:"words"`
}

type wordDoc struct {
	Text      string    `yaml:"text"`
	Frequency int       `yaml:"frequency,omitempty"`
	Files     []fileDoc `yaml:"files"`
}

type fileDoc struct {
	Name  string `yaml:"name"`
	Lines []int  `yaml:"lines,omitempty,flow"`
}

// ReportWriter writes reports as a YAML document.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteReport writes r as a single YAML document.
func (rw *ReportWriter) WriteReport(w io.Writer, r *wordtracker.Report) error {
	doc := reportDoc{
		Sort:   r.Order,
		Detail: r.Detail,
		Words:  make([]wordDoc, 0, len(r.Words)),
	}
	for _, word := range r.Words {
		wd := wordDoc{Text: word.Text}
		if r.Detail == wordtracker.DetailAll {
			wd.Frequency = word.TotalFrequency()
		}
		for _, file := range word.Files() {
			fd := fileDoc{Name: file}
			if r.Detail != wordtracker.DetailFiles {
				fd.Lines = word.Occurrences[file]
			}
			wd.Files = append(wd.Files, fd)
		}
		doc.Words = append(doc.Words, wd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
