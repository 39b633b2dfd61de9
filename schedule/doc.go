// SPDX-License-Identifier: MIT

// Package schedule distributes the rows of a 2D workload across a fixed pool
// of worker goroutines and blocks until all of them are done (fork-join).
//
// Two policies are available:
//
//   - Static: rows are split up front into contiguous blocks whose sizes
//     differ by at most one. Suited to uniform per-row cost (dense matrix
//     multiply) where pre-assignment has no load-balancing downside and keeps
//     every worker on a contiguous memory range.
//   - Dynamic: idle workers claim the next chunk of rows (default 1) from a
//     shared counter. Suited to content-dependent cost (Mandelbrot rows that
//     cross the set take up to MaxIter iterations per pixel).
//
// Every row index in [0, rows) is handed to exactly one worker exactly once,
// under either policy and for any worker count. Callers that write one output
// row per row index therefore need no locking.
//
// Complexity:
//   - Static: O(rows) callback invocations, O(workers) goroutines, no shared state.
//   - Dynamic: one atomic add per chunk.
//
// Example:
//
//	err := schedule.Run(len(rows), func(worker, row int) {
//		process(rows[row])
//	}, schedule.WithPolicy(schedule.Dynamic), schedule.WithWorkers(8))
package schedule
