package mock

import (
	"context"

	"github.com/fwojciec/wordtracker"
)

var _ wordtracker.SourceReader = (*SourceReader)(nil)

// SourceReader is a mock implementation of wordtracker.SourceReader.
type SourceReader struct {
	ReadSourcesFn func(ctx context.Context, paths []string) ([]*wordtracker.Source, error)
}

func (r *SourceReader) ReadSources(ctx context.Context, paths []string) ([]*wordtracker.Source, error) {
	return r.ReadSourcesFn(ctx, paths)
}
