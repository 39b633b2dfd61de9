// SPDX-License-Identifier: MIT

package mandelbrot

import (
	"fmt"

	"github.com/katalvlaran/parbench/internal/logx"
	"github.com/katalvlaran/parbench/trial"
)

const opBenchmark = "Benchmark"

// BenchmarkConfig drives Benchmark.
type BenchmarkConfig struct {
	// Trials is the number of timed renders; < 1 selects DefaultTrials.
	Trials int

	// Render options applied to every trial.
	Render []Option

	// Trial options (label, reporter, clock) passed to trial.Run.
	Trial []trial.Option

	// CheckConsistency compares every trial's grid against the first one,
	// outside the timed region. Between trials the grid is Reset so that a
	// missed row shows up as Unset.
	CheckConsistency bool
}

// Benchmark renders into g Trials times under the trial harness. The grid
// left in g is the output of the final trial.
//
// Errors:
//   - ErrNilGrid.
//   - ErrInconsistentTrial when CheckConsistency is set and a trial's grid
//     differs from the first trial's, or leaves a cell Unset.
//   - Errors from trial.Run and Render.
func Benchmark(g *Grid, cfg BenchmarkConfig) (trial.Record, error) {
	if g == nil {
		return trial.Record{}, fmt.Errorf("%s: %w", opBenchmark, ErrNilGrid)
	}
	n := cfg.Trials
	if n < 1 {
		n = DefaultTrials
	}

	opts := cfg.Trial[:len(cfg.Trial):len(cfg.Trial)]
	if cfg.CheckConsistency {
		var ref *Grid
		opts = append(opts, trial.WithCheck(func(k int) error {
			if !g.Covered() {
				return fmt.Errorf("%w: trial %d left unset cells", ErrInconsistentTrial, k)
			}
			if k == 0 {
				ref = g.Clone()
			} else if !g.Equal(ref) {
				return fmt.Errorf("%w: trial %d", ErrInconsistentTrial, k)
			}
			if k < n-1 {
				g.Reset()
			}

			return nil
		}))
	}

	logx.Logger().Debug("mandelbrot: benchmark",
		"width", g.w, "height", g.h, "trials", n, "check", cfg.CheckConsistency)
	rec, err := trial.Run(n, func(int) error { return Render(g, cfg.Render...) }, opts...)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", opBenchmark, err)
	}

	return rec, nil
}
