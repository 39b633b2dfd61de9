// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parbench/internal/logx"
)

const opRun = "Run"

// Run calls fn once for every row in [0, rows) using a pool of worker
// goroutines, and returns after all calls have completed.
//
// Implementation:
//   - Stage 1: validate inputs, resolve options and pool size.
//   - Stage 2: a pool of one runs inline on the caller goroutine.
//   - Stage 3: otherwise fork one goroutine per worker through an errgroup;
//     Static workers walk their precomputed Block, Dynamic workers claim
//     chunks from a shared counter until it passes rows.
//   - Stage 4: join (errgroup.Wait).
//
// Errors:
//   - ErrNilRowFunc, ErrNegativeRows.
//
// Complexity:
//   - Time O(rows) callbacks; Space O(workers).
func Run(rows int, fn RowFunc, opts ...Option) error {
	if fn == nil {
		return fmt.Errorf("%s: %w", opRun, ErrNilRowFunc)
	}
	if rows < 0 {
		return fmt.Errorf("%s(%d): %w", opRun, rows, ErrNegativeRows)
	}
	if rows == 0 {
		return nil
	}

	o := gatherOptions(opts...)
	workers := Workers(o.workers, rows)
	logx.Logger().Debug("schedule: fork",
		"rows", rows, "workers", workers, "policy", o.policy.String(), "chunk", o.chunk)

	if workers == 1 {
		for row := 0; row < rows; row++ {
			fn(0, row)
		}
		return nil
	}

	var g errgroup.Group
	switch o.policy {
	case Dynamic:
		runDynamic(&g, rows, workers, o.chunk, fn)
	default:
		runStatic(&g, rows, workers, fn)
	}

	return g.Wait()
}

func runStatic(g *errgroup.Group, rows, workers int, fn RowFunc) {
	for w, b := range Blocks(rows, workers) {
		w, b := w, b
		g.Go(func() error {
			for row := b.Start; row < b.End; row++ {
				fn(w, row)
			}
			return nil
		})
	}
}

func runDynamic(g *errgroup.Group, rows, workers, chunk int, fn RowFunc) {
	var next atomic.Int64
	step, limit := int64(chunk), int64(rows)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for {
				end := next.Add(step)
				start := end - step
				if start >= limit {
					return nil
				}
				if end > limit {
					end = limit
				}
				for row := start; row < end; row++ {
					fn(w, int(row))
				}
			}
		})
	}
}

// Blocks splits [0, rows) into contiguous blocks, one per worker, in worker
// order. Block sizes differ by at most one; the first rows%workers blocks get
// the extra row. workers is clamped to rows. Returns nil when rows <= 0 or
// workers <= 0.
//
// Complexity: Time O(workers), Space O(workers).
func Blocks(rows, workers int) []Block {
	if rows <= 0 || workers <= 0 {
		return nil
	}
	if workers > rows {
		workers = rows
	}

	base, extra := rows/workers, rows%workers
	out := make([]Block, workers)
	start := 0
	for w := range out {
		size := base
		if w < extra {
			size++
		}
		out[w] = Block{Start: start, End: start + size}
		start += size
	}

	return out
}
