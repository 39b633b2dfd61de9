// SPDX-License-Identifier: MIT

// Package mandelbrot renders escape-time iteration counts of the Mandelbrot
// set into a pixel grid, one dynamically scheduled row at a time.
//
// 🚀 What is here?
//
//   - Escape: the pure escape-time evaluator, z ← z² + c from z = 0, counting
//     iterations until |z|² ≥ 4 or MaxIter. Result in [1, MaxIter].
//   - PixelToPlane: linear map of pixel (row, col) onto the complex plane,
//     real = (col − W/2)·4/W and imag = (row − H/2)·4/H.
//   - Grid: a heap-allocated W×H row-major buffer of iteration counts.
//   - Render: fills a Grid in parallel. Work units are whole rows so no two
//     workers ever write the same cache line, and rows are claimed
//     dynamically (chunk 1) because cost depends on how much of the row lies
//     inside the set.
//   - Benchmark: Render under the trial harness with an optional
//     cross-trial consistency check.
//
// Invariants:
//   - Every cell is written exactly once per Render by exactly one worker.
//   - Results do not depend on worker count, policy or chunk size.
//   - Unset (0) never appears in a rendered grid because Escape ≥ 1.
//
// Example:
//
//	g, _ := mandelbrot.NewGrid(mandelbrot.DefaultWidth, mandelbrot.DefaultHeight)
//	if err := mandelbrot.Render(g, mandelbrot.WithWorkers(8)); err != nil {
//		log.Fatal(err)
//	}
package mandelbrot
