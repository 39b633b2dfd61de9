// SPDX-License-Identifier: MIT

package mandelbrot

import (
	"fmt"
	"math"
	"slices"
)

// Unset marks a cell that no render has written yet. Escape never returns it.
const Unset = 0

// Grid is a width×height buffer of iteration counts in row-major order
// (offset = row*width + col). It is not synchronized: Render hands each row
// to exactly one worker.
type Grid struct {
	w, h int
	pix  []int
}

// NewGrid allocates a grid with every cell set to Unset.
//
// Errors:
//   - ErrInvalidDimensions when width or height is <= 0 or width*height
//     overflows int.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", width, height, ErrInvalidDimensions)
	}

	return &Grid{w: width, h: height, pix: make([]int, width*height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// At returns the value of pixel (row, col).
func (g *Grid) At(row, col int) (int, error) {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return 0, fmt.Errorf("Grid.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g.pix[row*g.w+col], nil
}

// Row returns row i as a slice aliasing the grid storage, or nil when i is
// out of range.
func (g *Grid) Row(i int) []int {
	if i < 0 || i >= g.h {
		return nil
	}
	base := i * g.w

	return g.pix[base : base+g.w : base+g.w]
}

// Reset sets every cell back to Unset.
func (g *Grid) Reset() { clear(g.pix) }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, pix: slices.Clone(g.pix)}
}

// Equal reports whether both grids have the same shape and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}

	return g.w == other.w && g.h == other.h && slices.Equal(g.pix, other.pix)
}

// Covered reports whether no cell holds Unset.
func (g *Grid) Covered() bool {
	return !slices.Contains(g.pix, Unset)
}
