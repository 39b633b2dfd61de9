// SPDX-License-Identifier: MIT

package trial

import "errors"

var (
	// ErrNoTrials is returned when the requested trial count is < 1.
	ErrNoTrials = errors.New("trial: trial count must be >= 1")

	// ErrNilFunc is returned when Run is called without a workload.
	ErrNilFunc = errors.New("trial: nil func")
)
