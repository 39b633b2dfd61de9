// SPDX-License-Identifier: MIT

package trial

import "time"

const panicNilClock = "trial: WithClock: clock must not be nil"

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the resolved configuration of a Run call.
type Options struct {
	label    string
	clock    Clock
	reporter Reporter
	check    func(k int) error
}

// WithLabel names the measured workload (e.g. "Parallel Matrix Multiplication").
func WithLabel(label string) Option {
	return func(o *Options) { o.label = label }
}

// WithClock replaces time.Now. Panics on nil.
func WithClock(c Clock) Option {
	if c == nil {
		panic(panicNilClock)
	}

	return func(o *Options) { o.clock = c }
}

// WithReporter sends per-trial and summary results to r. nil disables reporting.
func WithReporter(r Reporter) Option {
	return func(o *Options) { o.reporter = r }
}

// WithCheck installs a hook run after every trial, outside the timed region
// and after the trial is reported. A non-nil error aborts the run like an
// error from the workload.
func WithCheck(check func(k int) error) Option {
	return func(o *Options) { o.check = check }
}

func gatherOptions(user ...Option) Options {
	o := Options{clock: time.Now}
	for _, set := range user {
		set(&o)
	}

	return o
}
