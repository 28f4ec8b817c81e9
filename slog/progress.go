package slog

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Progress logs indexing progress at most once per interval. The first
// report is always logged.
type Progress struct {
	logger    *slog.Logger
	sometimes rate.Sometimes
}

// NewProgress creates a new Progress logging at most once per interval.
func NewProgress(logger *slog.Logger, interval time.Duration) *Progress {
	return &Progress{
		logger:    logger,
		sometimes: rate.Sometimes{First: 1, Interval: interval},
	}
}

// Report logs that source has been indexed as number done of total.
func (p *Progress) Report(source string, done, total, words int) {
	p.sometimes.Do(func() {
		p.logger.Info("indexing",
			"source", source,
			"done", done,
			"total", total,
			"words", words,
		)
	})
}
