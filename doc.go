// Package parbench is a pair of parallel numeric micro-benchmarks built on a
// single row-partitioning executor and a small trial harness.
//
// 🚀 What is inside?
//
//	Two embarrassingly-parallel kernels, instrumented with wall-clock timing:
//		• Mandelbrot escape-time renderer: per-pixel cost varies wildly, so
//		  rows are claimed dynamically one at a time.
//		• Dense n×n matrix multiply: per-row cost is uniform, so rows are split
//		  into contiguous blocks up front; a transposed variant trades an O(n²)
//		  pass for stride-1 access on both operands.
//
// ✨ Guarantees
//
//   - Fork-join only: every parallel region returns after all rows are done.
//   - Partition by construction: each row is written by exactly one worker,
//     no mutex anywhere in the kernels.
//   - Deterministic numerics: a dot product is always summed k=0..n-1 by one
//     worker, so sequential and parallel results are bit-identical.
//
// Packages:
//
//	schedule/    generic row executor with Static and Dynamic policies
//	mandelbrot/  escape-time evaluator, pixel grid, renderer
//	matrix/      row-major Dense, transpose, direct & transposed multiply
//	trial/       repeated timing, mean, console reporter
//	export/      plain PGM writer plus PNG/BMP/TIFF encoders
//	cmd/         mandelbrot and matmul command-line benchmarks
//
// Quick example:
//
//	g, _ := mandelbrot.NewGrid(640, 480)
//	_ = mandelbrot.Render(g, mandelbrot.WithWorkers(8))
//	_ = export.SaveFile("mandelbrot_parallel.pgm", g)
//
//	go install github.com/katalvlaran/parbench/cmd/...@latest
package parbench
