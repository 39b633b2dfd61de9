// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and a naive reference multiply.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/parbench/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustFrom builds a *Dense from row-major values or fails the test.
func mustFrom(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// mustRandom builds a seeded random r×c matrix.
func mustRandom(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandom(r, c, matrix.NewRNG(seed))
	require.NoError(tb, err)

	return m
}

// naiveMul is the sequential triple loop through the public accessors,
// summing k in index order. It is the reference every kernel must match.
func naiveMul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	out := mustDense(tb, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			dot := 0.0
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				require.NoError(tb, err)
				bv, err := b.At(k, j)
				require.NoError(tb, err)
				dot += float64(av * bv)
			}
			require.NoError(tb, out.Set(i, j, dot))
		}
	}

	return out
}
