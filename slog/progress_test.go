package slog_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	wtslog "github.com/fwojciec/wordtracker/slog"
	"github.com/stretchr/testify/assert"
)

func TestProgress_Report(t *testing.T) {
	t.Parallel()

	t.Run("always logs the first report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		p := wtslog.NewProgress(logger, time.Hour)
		p.Report("a.txt", 1, 3, 10)

		output := buf.String()
		assert.Contains(t, output, "indexing")
		assert.Contains(t, output, "source=a.txt")
		assert.Contains(t, output, "done=1")
		assert.Contains(t, output, "total=3")
		assert.Contains(t, output, "words=10")
	})

	t.Run("throttles reports within the interval", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		p := wtslog.NewProgress(logger, time.Hour)
		p.Report("a.txt", 1, 3, 10)
		p.Report("b.txt", 2, 3, 12)
		p.Report("c.txt", 3, 3, 15)

		assert.Equal(t, 1, strings.Count(buf.String(), "msg=indexing"))
	})
}
