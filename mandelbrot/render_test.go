package mandelbrot_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/parbench/mandelbrot"
	"github.com/katalvlaran/parbench/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, w, h int) *mandelbrot.Grid {
	t.Helper()
	g, err := mandelbrot.NewGrid(w, h)
	require.NoError(t, err)
	return g
}

func TestRender_DefaultSizeCoversEveryPixel(t *testing.T) {
	g := mustGrid(t, mandelbrot.DefaultWidth, mandelbrot.DefaultHeight)
	require.NoError(t, mandelbrot.Render(g))
	require.True(t, g.Covered())

	center, err := g.At(mandelbrot.DefaultHeight/2, mandelbrot.DefaultWidth/2)
	require.NoError(t, err)
	assert.Equal(t, mandelbrot.DefaultMaxIter, center)

	corner, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, corner)
}

// TestRender_IndependentOfSchedule compares every pool size, policy and chunk
// against the sequential baseline.
func TestRender_IndependentOfSchedule(t *testing.T) {
	const w, h = 96, 71
	want := mustGrid(t, w, h)
	require.NoError(t, mandelbrot.RenderSequential(want))

	for _, p := range []schedule.Policy{schedule.Static, schedule.Dynamic} {
		for _, workers := range []int{1, 2, 3, 8, h, h + 9, 0} {
			for _, chunk := range []int{1, 4, 100} {
				t.Run(fmt.Sprintf("%s/workers=%d/chunk=%d", p, workers, chunk), func(t *testing.T) {
					got := mustGrid(t, w, h)
					require.NoError(t, mandelbrot.Render(got,
						mandelbrot.WithPolicy(p), mandelbrot.WithWorkers(workers), mandelbrot.WithChunk(chunk)))
					require.True(t, got.Equal(want))
				})
			}
		}
	}
}

func TestRender_OverwritesStaleGrid(t *testing.T) {
	g := mustGrid(t, 16, 12)
	for i := 0; i < g.Height(); i++ {
		row := g.Row(i)
		for j := range row {
			row[j] = -7
		}
	}
	require.NoError(t, mandelbrot.Render(g, mandelbrot.WithWorkers(3)))

	want := mustGrid(t, 16, 12)
	require.NoError(t, mandelbrot.RenderSequential(want))
	assert.True(t, g.Equal(want))
}

func TestRender_MaxIter(t *testing.T) {
	g := mustGrid(t, 32, 24)
	require.NoError(t, mandelbrot.Render(g, mandelbrot.WithMaxIter(10)))
	for i := 0; i < g.Height(); i++ {
		for _, v := range g.Row(i) {
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, 10)
		}
	}
	center, err := g.At(12, 16)
	require.NoError(t, err)
	assert.Equal(t, 10, center)
}

func TestRender_NilGrid(t *testing.T) {
	require.ErrorIs(t, mandelbrot.Render(nil), mandelbrot.ErrNilGrid)
	require.ErrorIs(t, mandelbrot.RenderSequential(nil), mandelbrot.ErrNilGrid)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { mandelbrot.WithMaxIter(0) })
	assert.Panics(t, func() { mandelbrot.WithChunk(0) })
	assert.Panics(t, func() { mandelbrot.WithPolicy(schedule.Policy(9)) })
	assert.NotPanics(t, func() { mandelbrot.WithWorkers(-1) })
}
