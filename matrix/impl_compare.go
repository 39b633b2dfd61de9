// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether a and b have the same shape and bit-identical
// elements (NaN never equals NaN). Nil inputs compare unequal.
//
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	for k, v := range a.data {
		if v != b.data[k] {
			return false
		}
	}

	return true
}

// AllClose reports whether |a[i,j] − b[i,j]| <= atol + rtol·|b[i,j]| for
// every element, the numpy convention.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, err
	}
	if err := ValidateNotNil(b); err != nil {
		return false, err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, err
	}
	for k, av := range a.data {
		bv := b.data[k]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
