package mock

import (
	"io"

	"github.com/fwojciec/wordtracker"
)

var _ wordtracker.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of wordtracker.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(w io.Writer, r *wordtracker.Report) error
}

func (rw *ReportWriter) WriteReport(w io.Writer, r *wordtracker.Report) error {
	return rw.WriteReportFn(w, r)
}
