// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrNilSource is returned when the source grid is nil.
	ErrNilSource = errors.New("export: nil source")

	// ErrEmptySource indicates a source with a non-positive dimension.
	ErrEmptySource = errors.New("export: source has no pixels")

	// ErrShortRow indicates a source row shorter than its declared width.
	ErrShortRow = errors.New("export: row shorter than width")

	// ErrUnknownFormat is returned for unsupported formats or extensions.
	ErrUnknownFormat = errors.New("export: unknown image format")

	// ErrBadSize indicates a non-positive target size for Scale.
	ErrBadSize = errors.New("export: target size must be > 0")
)
