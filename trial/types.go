// SPDX-License-Identifier: MIT

package trial

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Func is one run of the measured workload. k is the zero-based trial index.
// A non-nil error aborts the remaining trials.
type Func func(k int) error

// Clock returns the current time. time.Now is the default.
type Clock func() time.Time

// Record holds the elapsed time of every completed trial, in order.
// It is read-only once Run returns.
type Record struct {
	Label   string
	Samples []time.Duration
}

// Len returns the number of recorded trials.
func (r Record) Len() int { return len(r.Samples) }

// Total returns the sum of all samples.
func (r Record) Total() time.Duration {
	var sum time.Duration
	for _, d := range r.Samples {
		sum += d
	}

	return sum
}

// seconds converts the samples to float64 seconds.
func (r Record) seconds() []float64 {
	out := make([]float64, len(r.Samples))
	for i, d := range r.Samples {
		out[i] = d.Seconds()
	}

	return out
}

// MeanSeconds returns the arithmetic mean of the samples in seconds,
// or 0 for an empty record.
func (r Record) MeanSeconds() float64 {
	if len(r.Samples) == 0 {
		return 0
	}

	return stat.Mean(r.seconds(), nil)
}

// MeanMillis returns the arithmetic mean in milliseconds.
func (r Record) MeanMillis() float64 { return r.MeanSeconds() * 1e3 }

// Mean returns the arithmetic mean as a Duration, rounded to the nanosecond.
func (r Record) Mean() time.Duration {
	return time.Duration(math.Round(r.MeanSeconds() * float64(time.Second)))
}

// Reporter receives trial results as they are produced.
type Reporter interface {
	// Trial is called after trial k of n completed in elapsed.
	Trial(label string, k, n int, elapsed time.Duration)

	// Summary is called once after the last trial.
	Summary(rec Record)
}
