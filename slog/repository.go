// Package slog provides logging decorators for wordtracker services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordtracker"
)

// Ensure LoggingRepository implements wordtracker.Repository.
var _ wordtracker.Repository = (*LoggingRepository)(nil)

// LoggingRepository wraps a Repository with logging.
type LoggingRepository struct {
	next   wordtracker.Repository
	logger *slog.Logger
}

// NewLoggingRepository creates a new LoggingRepository.
func NewLoggingRepository(next wordtracker.Repository, logger *slog.Logger) *LoggingRepository {
	return &LoggingRepository{next: next, logger: logger}
}

// Load delegates to the wrapped repository and logs the word count.
func (r *LoggingRepository) Load(ctx context.Context) (tree *wordtracker.Tree[*wordtracker.Word], err error) {
	defer func(begin time.Time) {
		words := 0
		if tree != nil {
			words = tree.Len()
		}
		r.logger.Info("repository load",
			"words", words,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Load(ctx)
}

// Save delegates to the wrapped repository and logs the tree shape.
func (r *LoggingRepository) Save(ctx context.Context, tree *wordtracker.Tree[*wordtracker.Word]) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("repository save",
			"words", tree.Len(),
			"height", tree.Height(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Save(ctx, tree)
}

// Clear delegates to the wrapped repository.
func (r *LoggingRepository) Clear(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("repository clear",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Clear(ctx)
}
