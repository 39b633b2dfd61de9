package export_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/parbench/export"
	"github.com/katalvlaran/parbench/mandelbrot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rows is a minimal Source over literal rows.
type rows [][]int

func (r rows) Width() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}
func (r rows) Height() int     { return len(r) }
func (r rows) Row(i int) []int { return r[i] }

var sample = rows{
	{0, 1, 255},
	{300, -4, 17},
}

func TestWritePGM_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WritePGM(&buf, sample))
	assert.Equal(t, "P2\n3 2\n255\n0 1 255 \n255 0 17 \n", buf.String())
}

func TestWritePGM_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, export.WritePGM(&buf, nil), export.ErrNilSource)
	require.ErrorIs(t, export.WritePGM(&buf, rows{}), export.ErrEmptySource)
	require.ErrorIs(t, export.WritePGM(&buf, rows{{1, 2}, {3}}), export.ErrShortRow)
}

type failWriter struct{}

var errSink = errors.New("sink closed")

func (failWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWritePGM_WriterError(t *testing.T) {
	require.ErrorIs(t, export.WritePGM(failWriter{}, sample), errSink)
}

func TestWritePGM_Grid(t *testing.T) {
	g, err := mandelbrot.NewGrid(4, 2)
	require.NoError(t, err)
	require.NoError(t, mandelbrot.Render(g))

	var buf bytes.Buffer
	require.NoError(t, export.WritePGM(&buf, g))
	assert.Equal(t, "P2\n4 2\n255\n2 2 2 2 \n2 255 255 3 \n", buf.String())
}

func TestToGray(t *testing.T) {
	img, err := export.ToGray(sample)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, color.Gray{Y: 255}, img.GrayAt(0, 1))
	assert.Equal(t, color.Gray{Y: 0}, img.GrayAt(1, 1))
	assert.Equal(t, color.Gray{Y: 17}, img.GrayAt(2, 1))
}

func TestScale(t *testing.T) {
	img, err := export.ToGray(sample)
	require.NoError(t, err)
	big, err := export.Scale(img, 6, 4)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), big.Bounds())
	assert.Equal(t, img.GrayAt(2, 0), big.GrayAt(5, 0))
	assert.Equal(t, img.GrayAt(0, 1), big.GrayAt(0, 3))

	_, err = export.Scale(img, 0, 4)
	require.ErrorIs(t, err, export.ErrBadSize)
}

func decoderFor(f export.Format) func(io.Reader) (image.Image, error) {
	switch f {
	case export.PNG:
		return png.Decode
	case export.BMP:
		return bmp.Decode
	default:
		return tiff.Decode
	}
}

func TestEncode_RasterRoundTrip(t *testing.T) {
	for _, f := range []export.Format{export.PNG, export.BMP, export.TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, export.Encode(&buf, sample, f))

			img, err := decoderFor(f)(&buf)
			require.NoError(t, err)
			require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
			want := [][]uint8{{0, 1, 255}, {255, 0, 17}}
			for y, row := range want {
				for x, v := range row {
					got := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
					require.Equalf(t, v, got, "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, export.Encode(&buf, sample, export.Format(42)), export.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]export.Format{
		"mandelbrot_parallel.pgm": export.PGM,
		"out/x.PNG":               export.PNG,
		"a.bmp":                   export.BMP,
		"a.tif":                   export.TIFF,
		"a.tiff":                  export.TIFF,
	}
	for path, want := range cases {
		got, err := export.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	for _, bad := range []string{"noext", "a.jpg"} {
		_, err := export.FormatFromPath(bad)
		require.ErrorIs(t, err, export.ErrUnknownFormat, bad)
	}
	assert.Equal(t, "Format(9)", export.Format(9).String())
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()

	pgm := filepath.Join(dir, "mandelbrot_parallel.pgm")
	require.NoError(t, export.SaveFile(pgm, sample))
	data, err := os.ReadFile(pgm)
	require.NoError(t, err)
	assert.Equal(t, "P2\n3 2\n255\n0 1 255 \n255 0 17 \n", string(data))

	pngPath := filepath.Join(dir, "m.png")
	require.NoError(t, export.SaveFile(pngPath, sample))
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
}

func TestSaveFile_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "m.jpg")
	require.ErrorIs(t, export.SaveFile(bad, sample), export.ErrUnknownFormat)
	_, err := os.Stat(bad)
	assert.True(t, os.IsNotExist(err), "no file for an unknown format")

	require.ErrorIs(t, export.SaveFile(filepath.Join(dir, "n.pgm"), nil), export.ErrNilSource)
	require.Error(t, export.SaveFile(filepath.Join(dir, "missing", "m.pgm"), sample))
}
