// SPDX-License-Identifier: MIT

package mandelbrot

import (
	"fmt"

	"github.com/katalvlaran/parbench/schedule"
)

const opRender = "Render"

// renderRow writes Escape for every column of one row.
func renderRow(g *Grid, row, maxIter int) {
	out := g.Row(row)
	for col := range out {
		out[col] = Escape(PixelToPlane(row, col, g.w, g.h), maxIter)
	}
}

// Render fills every cell of g with its escape count. Rows are distributed
// over the worker pool; by default each idle worker claims the next unclaimed
// row. Render returns after all rows are written.
//
// Prior contents of g are overwritten, so a grid can be reused across calls
// without Reset.
//
// Errors:
//   - ErrNilGrid.
//
// Complexity: O(width·height·maxIter) worst case, spread over the pool.
func Render(g *Grid, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("%s: %w", opRender, ErrNilGrid)
	}
	o := gatherOptions(opts...)

	err := schedule.Run(g.h, func(_, row int) { renderRow(g, row, o.maxIter) }, o.scheduleOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", opRender, err)
	}

	return nil
}

// RenderSequential fills g on the caller goroutine in row order. It is the
// baseline Render is measured against.
func RenderSequential(g *Grid, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("RenderSequential: %w", ErrNilGrid)
	}
	o := gatherOptions(opts...)
	for row := 0; row < g.h; row++ {
		renderRow(g, row, o.maxIter)
	}

	return nil
}
