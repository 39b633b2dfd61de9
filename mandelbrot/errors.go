// SPDX-License-Identifier: MIT

package mandelbrot

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive or overflowing grid size.
	ErrInvalidDimensions = errors.New("mandelbrot: grid dimensions must be > 0")

	// ErrOutOfRange indicates a pixel coordinate outside the grid.
	ErrOutOfRange = errors.New("mandelbrot: pixel out of range")

	// ErrNilGrid is returned when Render or Benchmark receive a nil grid.
	ErrNilGrid = errors.New("mandelbrot: nil grid")

	// ErrInconsistentTrial is returned by Benchmark when a trial produced a
	// grid that differs from the first trial's grid.
	ErrInconsistentTrial = errors.New("mandelbrot: trial grid differs from first trial")
)
