// SPDX-License-Identifier: MIT

// Package trial runs a workload repeatedly, records the wall-clock time of
// every run and reports per-trial and mean timings.
//
// Timing uses time.Now, whose readings carry Go's monotonic clock, so wall
// clock adjustments during a run do not affect the samples. Tests inject a
// fake clock with WithClock.
//
// Example:
//
//	rec, err := trial.Run(10, func(int) error {
//		return mandelbrot.Render(grid)
//	}, trial.WithReporter(trial.NewTextReporter(os.Stdout)))
//	fmt.Printf("%.3f ms\n", rec.MeanMillis())
package trial
