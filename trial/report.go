// SPDX-License-Identifier: MIT

package trial

import (
	"fmt"
	"io"
	"time"
)

// Console formats. Seconds use %f (microsecond resolution), the mean uses
// milliseconds.
const (
	fmtTrial          = "Execution time of trial [%d]: %f seconds\n"
	fmtSummary        = "The average execution time of %d trials is: %f ms\n"
	fmtLabeled        = "%s: %f seconds\n"
	fmtLabeledTrial   = "%s [%d]: %f seconds\n"
	fmtLabeledSummary = "%s average over %d trials: %f ms\n"
)

// TextReporter writes human-readable lines to an io.Writer.
//
// Unlabeled runs print one line per trial and an average line. Labeled runs
// print "<label>: <seconds> seconds" and add an average line only when more
// than one trial ran.
type TextReporter struct {
	w   io.Writer
	err error
}

var _ Reporter = (*TextReporter)(nil)

// NewTextReporter returns a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Trial implements Reporter.
func (r *TextReporter) Trial(label string, k, n int, elapsed time.Duration) {
	switch {
	case label == "":
		r.printf(fmtTrial, k, elapsed.Seconds())
	case n == 1:
		r.printf(fmtLabeled, label, elapsed.Seconds())
	default:
		r.printf(fmtLabeledTrial, label, k, elapsed.Seconds())
	}
}

// Summary implements Reporter.
func (r *TextReporter) Summary(rec Record) {
	switch {
	case rec.Label == "":
		r.printf(fmtSummary, rec.Len(), rec.MeanMillis())
	case rec.Len() > 1:
		r.printf(fmtLabeledSummary, rec.Label, rec.Len(), rec.MeanMillis())
	}
}

// Err returns the first write error, if any.
func (r *TextReporter) Err() error { return r.err }

func (r *TextReporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
