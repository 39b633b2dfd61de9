// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/parbench/internal/logx"
)

// SaveFile writes src to path in the format named by its extension
// (.pgm, .png, .bmp, .tif, .tiff). The file is created or truncated.
//
// Errors:
//   - ErrUnknownFormat for an unsupported extension; nothing is created.
//   - Open, encode and close errors, joined when more than one occurs.
func SaveFile(path string, src Source) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if _, _, err = checkSource(src); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}

	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("SaveFile: close: %w", cerr))
		}
	}()

	if err = Encode(file, src, f); err != nil {
		return fmt.Errorf("SaveFile(%s): %w", path, err)
	}
	logx.Logger().Debug("export: saved", "path", path, "format", f.String(),
		"width", src.Width(), "height", src.Height())

	return nil
}
