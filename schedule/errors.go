// SPDX-License-Identifier: MIT

package schedule

import "errors"

var (
	// ErrNilRowFunc is returned when Run is called without a row callback.
	ErrNilRowFunc = errors.New("schedule: nil row func")

	// ErrNegativeRows is returned when the row count is negative.
	ErrNegativeRows = errors.New("schedule: negative row count")

	// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
	ErrUnknownPolicy = errors.New("schedule: unknown policy")
)
