// SPDX-License-Identifier: MIT
// Package matrix - multiply and transpose kernels.
//
// Purpose:
//   - Provide the two multiply variants compared by the benchmark:
//     Direct (B walked column-wise) and Transposed (B2 = Bᵀ walked row-wise).
//   - Run either variant on the caller goroutine or across a worker pool that
//     owns contiguous blocks of output rows.
//
// Notes:
//   - Row kernels take raw row-major slices; all shape checks happen once in
//     the facade before any goroutine starts.
//   - Each output element is a single dot product summed k = 0..K-1 by one
//     goroutine, so every path returns bit-identical results.
//   - Products are rounded to float64 before accumulation on every GOARCH.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/parbench/schedule"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMulT      = "MulT"
	opMulInto   = "MulInto"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At. The copy bypasses the numeric policy of the destination since
// values come from an existing matrix.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		row := out.row(i)
		for j := range row {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			row[j] = v
		}
	}

	return out, nil
}

// transposeDense writes srcᵀ into a fresh allocation.
// data[i*cols + j] → out.data[j*rows + i].
func transposeDense(src *Dense) *Dense {
	rows, cols := src.r, src.c
	out := &Dense{
		r:              cols,
		c:              rows,
		data:           make([]float64, rows*cols),
		validateNaNInf: src.validateNaNInf,
	}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = src.data[baseSrc+j]
		}
	}

	return out
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: copy through a *Dense fast path (or an At-based copy first).
//
// Errors:
//   - ErrNilMatrix; errors from At on non-Dense inputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(d), nil
}

// mulRowDirect computes output row i of C = A×B.
// a is r×k, b is k×p, c is r×p; b is read with stride p.
func mulRowDirect(c, a, b []float64, k, p, i int) {
	aRow := a[i*k : i*k+k]
	cRow := c[i*p : i*p+p]
	var dot float64
	for j := range cRow {
		dot = 0
		for kk, av := range aRow {
			dot += float64(av * b[kk*p+j]) // conversion forbids FMA fusion
		}
		cRow[j] = dot
	}
}

// mulRowTransposed computes output row i of C = A×B given bt = Bᵀ (p×k).
// Both a and bt rows are read with stride 1.
func mulRowTransposed(c, a, bt []float64, k, p, i int) {
	aRow := a[i*k : i*k+k]
	cRow := c[i*p : i*p+p]
	var dot float64
	for j := range cRow {
		btRow := bt[j*k : j*k+k]
		dot = 0
		for kk, av := range aRow {
			dot += float64(av * btRow[kk])
		}
		cRow[j] = dot
	}
}

// MulInto computes dst = a × b, overwriting every element of dst.
//
// Implementation:
//   - Stage 1: validate shapes (a.Cols == b.Rows, dst is a.Rows × b.Cols)
//     and reject dst aliasing an operand.
//   - Stage 2: Transposed only: materialize B2 = bᵀ for the whole matrix.
//     This completes before any row is computed.
//   - Stage 3: compute rows on the caller goroutine (workers == 1) or through
//     schedule.Run with the Static policy: contiguous row blocks, one per worker.
//
// Behavior highlights:
//   - dst never needs zeroing between calls; stale values cannot leak.
//   - B2 is unreferenced when MulInto returns.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOperands.
//
// Determinism:
//   - Identical results for every variant and worker count.
//
// Complexity:
//   - Time O(r*k*p); Space O(k*p) extra for Transposed, O(workers) otherwise.
func MulInto(dst, a, b *Dense, opts ...Option) error {
	if err := validateMulInto(dst, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	o := gatherOptions(opts...)

	k, p := a.c, b.c
	var rowFn func(i int)
	switch o.variant {
	case Transposed:
		bt := transposeDense(b)
		rowFn = func(i int) { mulRowTransposed(dst.data, a.data, bt.data, k, p, i) }
	default:
		rowFn = func(i int) { mulRowDirect(dst.data, a.data, b.data, k, p, i) }
	}

	if o.workers == 1 {
		for i := 0; i < a.r; i++ {
			rowFn(i)
		}
		return nil
	}

	err := schedule.Run(a.r, func(_, i int) { rowFn(i) },
		schedule.WithPolicy(schedule.Static), schedule.WithWorkers(o.workers))
	if err != nil {
		return matrixErrorf(opMulInto, err)
	}

	return nil
}

func validateMulInto(dst, a, b *Dense) error {
	if dst == nil {
		return validatorErrorf("MulInto: dst", ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if dst.r != a.r || dst.c != b.c {
		return validatorErrorf("MulInto: dst shape", ErrDimensionMismatch)
	}
	if dst == a || dst == b {
		return ErrAliasedOperands
	}

	return nil
}

// Mul computes C = A × B with the Direct variant unless opts say otherwise,
// allocating the result.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); non-Dense operands are copied into Dense.
//   - Stage 2: allocate C (a.Rows × b.Cols) and delegate to MulInto.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, errors from At on non-Dense inputs.
//
// Complexity:
//   - Time O(r*k*p), Space O(r*p).
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	return mul(opMul, a, b, opts...)
}

// MulT is Mul with the Transposed variant: both operands are walked row-wise
// after an O(k*p) transposition of b into scratch memory. The variant is
// fixed; a WithVariant in opts is overridden.
func MulT(a, b Matrix, opts ...Option) (*Dense, error) {
	return mul(opMulT, a, b, append(opts[:len(opts):len(opts)], WithVariant(Transposed))...)
}

func mul(tag string, a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = MulInto(res, da, db, opts...); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}
