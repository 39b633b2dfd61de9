// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"
	"strings"
)

// RowFunc processes a single row. worker is the zero-based index of the
// goroutine running the call, in [0, workers). Calls for distinct rows may
// run concurrently; calls for the same row never happen twice.
type RowFunc func(worker, row int)

// Policy selects how rows are assigned to workers.
type Policy int

const (
	// Static divides rows into contiguous blocks assigned before the fork.
	Static Policy = iota

	// Dynamic lets idle workers claim the next chunk of rows at runtime.
	Dynamic
)

// Policy names accepted by ParsePolicy and produced by String.
const (
	nameStatic  = "static"
	nameDynamic = "dynamic"
)

// String returns the lower-case policy name.
func (p Policy) String() string {
	switch p {
	case Static:
		return nameStatic
	case Dynamic:
		return nameDynamic
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "static" or "dynamic" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case nameStatic:
		return Static, nil
	case nameDynamic:
		return Dynamic, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}

// Block is a half-open row range [Start, End) assigned to one worker.
type Block struct {
	Start, End int
}

// Len returns the number of rows in the block.
func (b Block) Len() int { return b.End - b.Start }
