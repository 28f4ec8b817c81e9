package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/wordtracker"
	"github.com/fwojciec/wordtracker/bloom"
	wtetree "github.com/fwojciec/wordtracker/etree"
	wtyaml "github.com/fwojciec/wordtracker/yaml"
)

// filterFalsePositiveRate is the Bloom filter error rate used while indexing.
const filterFalsePositiveRate = 0.01

// Run executes the track command.
func (c *TrackCmd) Run(deps *Dependencies) error {
	tree, err := deps.Repository.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
		return err
	}

	sources, err := deps.Sources.ReadSources(deps.Ctx, c.Files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
		return err
	}

	tokens := 0
	for _, src := range sources {
		tokens += len(src.Tokens)
	}
	filter := bloom.NewFilter(uint(tree.Len()+tokens+1), filterFalsePositiveRate)
	ix := wordtracker.NewIndexer(tree, filter)
	if c.Reset {
		ix.Reset()
	}

	for i, src := range sources {
		if src.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sourceError(src.Err))
			continue
		}
		if _, err := ix.IndexSource(src); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
			return err
		}
		if deps.Progress != nil {
			deps.Progress.Report(src.Path, i+1, len(sources), tree.Len())
		}
	}

	deps.Logger.Debug("word filter",
		"estimated", filter.EstimatedCount(),
		"words", tree.Len(),
	)

	if err := deps.Repository.Save(deps.Ctx, tree); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
		return err
	}

	report, err := wordtracker.NewReport(tree, wordtracker.Detail(c.Print), wordtracker.SortOrder(c.Sort))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
		return err
	}

	return c.writeReport(deps, report)
}

func (c *TrackCmd) writeReport(deps *Dependencies, report *wordtracker.Report) error {
	rw := deps.ReportWriter
	if rw == nil {
		var err error
		rw, err = reportWriter(c.Format)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
			return err
		}
	}

	var w io.Writer = deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot open output file: %v\n", err)
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := rw.WriteReport(w, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot write report: %v\n", err)
		return fmt.Errorf("failed to write report: %w", err)
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stdout, "Report written to %s\n", c.Output)
	}
	return nil
}

// sourceError describes a failed source. Read failures are not coded, so
// their full text is kept.
func sourceError(err error) string {
	if wordtracker.ErrorCode(err) == wordtracker.EINTERNAL {
		return err.Error()
	}
	return wordtracker.ErrorMessage(err)
}

func reportWriter(format string) (wordtracker.ReportWriter, error) {
	switch format {
	case "text", "":
		return wordtracker.NewTextWriter(), nil
	case "xml":
		return wtetree.NewReportWriter(), nil
	case "yaml":
		return wtyaml.NewReportWriter(), nil
	}
	return nil, wordtracker.Errorf(wordtracker.EINVALID, "unknown report format %q", format)
}
