// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is the minimal read/write surface shared by matrix implementations.
// Kernels take fast paths on *Dense and fall back to At/Set otherwise.
//
// Complexity notes: all methods are expected O(1) except Clone (O(rows*cols)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Variant selects the memory-access pattern of the multiply kernel.
type Variant int

const (
	// Direct reads B column-wise (stride n).
	Direct Variant = iota

	// Transposed materializes Bᵀ first and reads both operands row-wise.
	Transposed
)

const (
	nameDirect     = "direct"
	nameTransposed = "transposed"
)

// String returns the lower-case variant name.
func (v Variant) String() string {
	switch v {
	case Direct:
		return nameDirect
	case Transposed:
		return nameTransposed
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "direct" or "transposed" (case-insensitive) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case nameDirect:
		return Direct, nil
	case nameTransposed:
		return Transposed, nil
	default:
		return 0, fmt.Errorf("ParseVariant(%q): %w", s, ErrUnknownVariant)
	}
}
