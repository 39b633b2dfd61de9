// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects an image encoding.
type Format int

const (
	// PGM is the plain-text portable graymap (P2).
	PGM Format = iota
	PNG
	BMP
	TIFF
)

var formatNames = [...]string{PGM: "pgm", PNG: "png", BMP: "bmp", TIFF: "tiff"}

// String returns the lower-case format name.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat maps a format name or extension (with or without the dot,
// case-insensitive) to a Format. "tif" is accepted for TIFF.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "pgm":
		return PGM, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath derives the Format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}
