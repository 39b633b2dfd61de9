// SPDX-License-Identifier: MIT

// Package export writes iteration-count grids as images.
//
// The canonical output is a plain-text PGM (P2) file: a "P2" magic line, a
// "<width> <height>" line, a maxval line of 255, then one text line per grid
// row holding every value followed by a single space. Values outside
// [0, 255] are clamped.
//
// PNG, BMP and TIFF carry the same 8-bit grayscale data and are selected by
// file extension in SaveFile.
package export
