// SPDX-License-Identifier: MIT

// Package schedule: functional configuration for Run.
//
// Design goals:
//   - Documented defaults as exported constants (single source of truth).
//   - Panic only on nonsensical values (programmer error); zero workers is
//     legal and means "use hardware parallelism".

package schedule

import "runtime"

// Defaults.
const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
	DefaultWorkers = 0

	// DefaultPolicy is Static: the cheapest policy for uniform rows.
	DefaultPolicy = Static

	// DefaultChunk is the number of rows claimed per Dynamic grab.
	DefaultChunk = 1
)

const (
	panicChunkInvalid  = "schedule: WithChunk: chunk must be >= 1"
	panicPolicyInvalid = "schedule: WithPolicy: unknown policy"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the resolved configuration of a Run call.
type Options struct {
	workers int    // <= 0 means GOMAXPROCS
	policy  Policy // Static or Dynamic
	chunk   int    // >= 1, Dynamic only
}

// WithWorkers sets the worker pool size. n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithPolicy selects the row assignment policy.
// Panics on values other than Static or Dynamic.
func WithPolicy(p Policy) Option {
	if p != Static && p != Dynamic {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithChunk sets how many consecutive rows a worker claims at once under the
// Dynamic policy. Ignored by Static. Panics when n < 1.
func WithChunk(n int) Option {
	if n < 1 {
		panic(panicChunkInvalid)
	}

	return func(o *Options) { o.chunk = n }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		policy:  DefaultPolicy,
		chunk:   DefaultChunk,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Workers resolves a requested pool size against hardware parallelism and the
// amount of available work: n <= 0 means GOMAXPROCS, and the result never
// exceeds rows (idle goroutines would only add fork cost). Returns 0 when
// rows <= 0.
func Workers(n, rows int) int {
	if rows <= 0 {
		return 0
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > rows {
		n = rows
	}

	return n
}
