package mandelbrot_test

import (
	"testing"

	"github.com/katalvlaran/parbench/mandelbrot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape_KnownPoints(t *testing.T) {
	cases := []struct {
		name string
		c    mandelbrot.Complex
		want int
	}{
		{"origin", mandelbrot.Complex{}, mandelbrot.DefaultMaxIter},
		{"period-2 cycle", mandelbrot.Complex{Real: -1}, mandelbrot.DefaultMaxIter},
		{"far outside", mandelbrot.Complex{Real: 3}, 2},
		{"one", mandelbrot.Complex{Real: 1}, 3},
		{"corner", mandelbrot.Complex{Real: -2, Imag: -2}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mandelbrot.Escape(tc.c, mandelbrot.DefaultMaxIter))
		})
	}
}

func TestEscape_RangeOverPlane(t *testing.T) {
	const w, h = 64, 48
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := mandelbrot.Escape(mandelbrot.PixelToPlane(row, col, w, h), 100)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, 100)
		}
	}
}

func TestEscape_MaxIterFloor(t *testing.T) {
	assert.Equal(t, 1, mandelbrot.Escape(mandelbrot.Complex{}, 0))
	assert.Equal(t, 1, mandelbrot.Escape(mandelbrot.Complex{}, -5))
	assert.Equal(t, 1, mandelbrot.Escape(mandelbrot.Complex{Real: 3}, 1))
}

func TestPixelToPlane(t *testing.T) {
	w, h := mandelbrot.DefaultWidth, mandelbrot.DefaultHeight
	assert.Equal(t, mandelbrot.Complex{}, mandelbrot.PixelToPlane(h/2, w/2, w, h))
	assert.Equal(t, mandelbrot.Complex{Real: -2, Imag: -2}, mandelbrot.PixelToPlane(0, 0, w, h))

	last := mandelbrot.PixelToPlane(h-1, w-1, w, h)
	assert.Less(t, last.Real, 2.0)
	assert.Less(t, last.Imag, 2.0)
	assert.InDelta(t, 2-4.0/float64(w), last.Real, 1e-12)
}
