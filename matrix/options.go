// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiply kernels and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: options never change summation order.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultVariant is the textbook i-j-k kernel.
	DefaultVariant = Direct

	// DefaultWorkers is the worker pool size for MulInto: 1 runs on the caller
	// goroutine. 0 selects GOMAXPROCS.
	DefaultWorkers = 1

	// DefaultEpsilon is the absolute tolerance used by AllClose callers that
	// have no better estimate.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVariantInvalid = "matrix: WithVariant: unknown variant"
	panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 0"
)

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	variant Variant // Direct or Transposed
	workers int     // 0 ⇒ GOMAXPROCS, 1 ⇒ sequential
}

// WithVariant selects the memory-access pattern of MulInto.
// Panics on values other than Direct or Transposed.
func WithVariant(v Variant) Option {
	if v != Direct && v != Transposed {
		panic(panicVariantInvalid)
	}

	return func(o *Options) { o.variant = v }
}

// WithWorkers sets the worker pool size used by MulInto.
//   - 0 selects runtime.GOMAXPROCS(0);
//   - 1 runs sequentially on the caller goroutine;
//   - n > rows is clamped to rows.
//
// Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		variant: DefaultVariant,
		workers: DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
