// SPDX-License-Identifier: MIT

package trial

import (
	"fmt"
	"time"

	"github.com/katalvlaran/parbench/internal/logx"
)

const opRun = "Run"

// Run executes fn n times in sequence and records the elapsed time of each call.
//
// Implementation:
//   - Stage 1: validate n and fn; resolve options.
//   - Stage 2: for k = 0..n-1, read the clock, call fn(k), read the clock again.
//   - Stage 3: report each trial, then run the optional untimed check hook.
//   - Stage 4: report the summary.
//
// Errors:
//   - ErrNoTrials, ErrNilFunc.
//   - The first error returned by fn, wrapped with its trial index. The
//     returned Record then holds the trials completed before the failure and
//     no summary is reported.
//
// Complexity: O(n) plus the cost of fn.
func Run(n int, fn Func, opts ...Option) (Record, error) {
	if n < 1 {
		return Record{}, fmt.Errorf("%s(%d): %w", opRun, n, ErrNoTrials)
	}
	if fn == nil {
		return Record{}, fmt.Errorf("%s: %w", opRun, ErrNilFunc)
	}
	o := gatherOptions(opts...)

	rec := Record{Label: o.label, Samples: make([]time.Duration, 0, n)}
	log := logx.Logger()
	for k := 0; k < n; k++ {
		start := o.clock()
		err := fn(k)
		elapsed := o.clock().Sub(start)
		if err != nil {
			return rec, fmt.Errorf("%s: trial %d: %w", opRun, k, err)
		}
		rec.Samples = append(rec.Samples, elapsed)
		log.Debug("trial: done", "label", o.label, "trial", k, "elapsed", elapsed)
		if o.reporter != nil {
			o.reporter.Trial(o.label, k, n, elapsed)
		}
		if o.check != nil {
			if err = o.check(k); err != nil {
				return rec, fmt.Errorf("%s: trial %d check: %w", opRun, k, err)
			}
		}
	}
	if o.reporter != nil {
		o.reporter.Summary(rec)
	}

	return rec, nil
}
