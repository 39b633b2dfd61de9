// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// MaxGray is the maxval written in the PGM header and the clamp ceiling.
const MaxGray = 255

// Source is a row-addressable grid of integer samples.
// *mandelbrot.Grid satisfies it.
type Source interface {
	Width() int
	Height() int
	Row(i int) []int
}

func clampGray(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > MaxGray:
		return MaxGray
	default:
		return uint8(v)
	}
}

// checkSource validates dimensions and returns them.
func checkSource(src Source) (w, h int, err error) {
	if src == nil {
		return 0, 0, ErrNilSource
	}
	w, h = src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return 0, 0, ErrEmptySource
	}

	return w, h, nil
}

// WritePGM writes src to w as a plain P2 graymap.
//
// Errors:
//   - ErrNilSource, ErrEmptySource, ErrShortRow.
//   - The first write error from w.
//
// Complexity: O(width·height).
func WritePGM(w io.Writer, src Source) error {
	width, height, err := checkSource(src)
	if err != nil {
		return fmt.Errorf("WritePGM: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P2\n%d %d\n%d\n", width, height, MaxGray)
	buf := make([]byte, 0, 4)
	for i := 0; i < height; i++ {
		row := src.Row(i)
		if len(row) < width {
			return fmt.Errorf("WritePGM: row %d: %w", i, ErrShortRow)
		}
		for _, v := range row[:width] {
			buf = strconv.AppendUint(buf[:0], uint64(clampGray(v)), 10)
			buf = append(buf, ' ')
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("WritePGM: %w", err)
	}

	return nil
}
