package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordtracker"
)

// Ensure LoggingSourceReader implements wordtracker.SourceReader.
var _ wordtracker.SourceReader = (*LoggingSourceReader)(nil)

// LoggingSourceReader wraps a SourceReader, logging each source read and a
// summary of the whole call.
type LoggingSourceReader struct {
	next   wordtracker.SourceReader
	logger *slog.Logger
}

// NewLoggingSourceReader creates a new LoggingSourceReader.
func NewLoggingSourceReader(next wordtracker.SourceReader, logger *slog.Logger) *LoggingSourceReader {
	return &LoggingSourceReader{next: next, logger: logger}
}

// ReadSources delegates to the wrapped reader and logs the results.
func (r *LoggingSourceReader) ReadSources(ctx context.Context, paths []string) (sources []*wordtracker.Source, err error) {
	defer func(begin time.Time) {
		tokens := 0
		for _, src := range sources {
			if src.Err != nil {
				r.logger.Warn("source skipped", "path", src.Path, "err", src.Err)
				continue
			}
			tokens += len(src.Tokens)
			r.logger.Debug("source read",
				"path", src.Path,
				"lines", src.Lines,
				"tokens", len(src.Tokens),
				"hash", src.Hash,
			)
		}
		r.logger.Info("read sources",
			"files", len(paths),
			"tokens", tokens,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadSources(ctx, paths)
}
