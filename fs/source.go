package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/wordtracker"
	"golang.org/x/sync/errgroup"
)

// Ensure SourceReader implements wordtracker.SourceReader at compile time.
var _ wordtracker.SourceReader = (*SourceReader)(nil)

// DefaultConcurrency is the number of files read at once when none is set.
const DefaultConcurrency = 4

// SourceReader reads and tokenizes files from the local filesystem.
// Files are read concurrently; results keep the order of the paths.
type SourceReader struct {
	Concurrency int
}

// NewSourceReader creates a new SourceReader reading up to concurrency
// files at once.
func NewSourceReader(concurrency int) *SourceReader {
	return &SourceReader{Concurrency: concurrency}
}

// ReadSources reads and tokenizes each path. Missing files are reported
// with an ENOTFOUND Source.Err.
func (r *SourceReader) ReadSources(ctx context.Context, paths []string) ([]*wordtracker.Source, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	sources := make([]*wordtracker.Source, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sources[i] = readSource(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sources, nil
}

func readSource(path string) *wordtracker.Source {
	src := &wordtracker.Source{Path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		src.Err = wordtracker.Errorf(wordtracker.ENOTFOUND, "file not found: %s", path)
		return src
	}
	if err != nil {
		src.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return src
	}

	tokens, lines, err := wordtracker.ScanLines(bytes.NewReader(data))
	if err != nil {
		src.Err = fmt.Errorf("failed to tokenize %s: %w", path, err)
		return src
	}

	src.Hash = hashContent(data)
	src.Lines = lines
	src.Tokens = tokens
	return src
}
