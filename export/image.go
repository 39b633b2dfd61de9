// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/parbench/internal/logx"
)

// ToGray converts src into an 8-bit grayscale image with clamped values.
// Pixel (x, y) holds column x of row y.
func ToGray(src Source) (*image.Gray, error) {
	width, height, err := checkSource(src)
	if err != nil {
		return nil, fmt.Errorf("ToGray: %w", err)
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := src.Row(y)
		if len(row) < width {
			return nil, fmt.Errorf("ToGray: row %d: %w", y, ErrShortRow)
		}
		pix := img.Pix[y*img.Stride : y*img.Stride+width]
		for x, v := range row[:width] {
			pix[x] = clampGray(v)
		}
	}

	return img, nil
}

// Scale resamples img to width×height with nearest-neighbor sampling, which
// keeps iteration bands sharp.
func Scale(img image.Image, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Scale(%d,%d): %w", width, height, ErrBadSize)
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	return dst, nil
}

// Encode writes src to w in format f.
//
// Errors:
//   - ErrUnknownFormat and every error of WritePGM or ToGray.
//   - Encoder and writer errors.
func Encode(w io.Writer, src Source, f Format) error {
	logx.Logger().Debug("export: encode", "format", f.String())
	if f == PGM {
		return WritePGM(w, src)
	}

	img, err := ToGray(src)
	if err != nil {
		return err
	}

	return EncodeImage(w, img, f)
}

// EncodeImage writes an already converted image in one of the raster formats.
func EncodeImage(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("Encode(%s): %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Encode(%s): %w", f, err)
	}

	return nil
}
