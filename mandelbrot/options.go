// SPDX-License-Identifier: MIT

package mandelbrot

import "github.com/katalvlaran/parbench/schedule"

// Defaults mirror the reference benchmark.
const (
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultMaxIter = 255
	DefaultTrials  = 10

	// DefaultWorkers selects GOMAXPROCS.
	DefaultWorkers = 0

	// DefaultPolicy claims rows at runtime; per-row cost is irregular.
	DefaultPolicy = schedule.Dynamic

	// DefaultChunk is one row per claim.
	DefaultChunk = 1
)

const (
	panicMaxIterInvalid = "mandelbrot: WithMaxIter: maxIter must be >= 1"
	panicPolicyInvalid  = "mandelbrot: WithPolicy: unknown policy"
	panicChunkInvalid   = "mandelbrot: WithChunk: chunk must be >= 1"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the resolved configuration of a Render call.
type Options struct {
	maxIter int
	workers int
	policy  schedule.Policy
	chunk   int
}

// WithMaxIter sets the iteration cap. Panics when n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithWorkers sets the worker pool size; n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithPolicy selects how rows are distributed. Static exists mostly to
// compare against the default Dynamic policy.
func WithPolicy(p schedule.Policy) Option {
	if p != schedule.Static && p != schedule.Dynamic {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithChunk sets rows per claim under the Dynamic policy. Panics when n < 1.
func WithChunk(n int) Option {
	if n < 1 {
		panic(panicChunkInvalid)
	}

	return func(o *Options) { o.chunk = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter: DefaultMaxIter,
		workers: DefaultWorkers,
		policy:  DefaultPolicy,
		chunk:   DefaultChunk,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// scheduleOptions translates the render configuration for schedule.Run.
func (o Options) scheduleOptions() []schedule.Option {
	return []schedule.Option{
		schedule.WithWorkers(o.workers),
		schedule.WithPolicy(o.policy),
		schedule.WithChunk(o.chunk),
	}
}
