// SPDX-License-Identifier: MIT

// Package matrix provides a row-major dense matrix and the multiply kernels
// benchmarked by cmd/matmul.
//
// The matrix package provides:
//
//   - Dense: a flat []float64 buffer with the explicit index formula i*cols + j,
//     safe At/Set accessors that return sentinel errors instead of panicking.
//   - Transpose: materializes Bᵀ into a fresh allocation.
//   - Two multiply variants for square operands:
//     Direct      C[i][j] = Σ_k A[i][k]·B[k][j]   (B walked with stride n)
//     Transposed  C[i][j] = Σ_k A[i][k]·B2[j][k]  (B2 = Bᵀ, both operands stride 1)
//   - MulInto: runs either variant sequentially or across a worker pool,
//     splitting output rows into contiguous blocks (schedule.Static).
//
// Numeric policy:
//   - Every dot product is summed by one goroutine in index order k = 0..n-1
//     with a single float64 accumulator. Sequential and parallel runs, and the
//     two variants, are therefore bit-identical for the same inputs.
//   - Set rejects NaN/±Inf by default (DefaultValidateNaNInf).
//
// Concurrency:
//   - Dense is not synchronized. Kernels write disjoint output rows from
//     different goroutines and never read the destination.
//   - The transposed variant finishes the whole transpose before forking.
//
// Complexity quicksheet:
//   - NewDense O(r*c); At/Set O(1); Transpose O(r*c) time and space;
//     Mul/MulT O(n³) time, MulT adds O(n²) scratch.
//
// Example:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 0, 0, 1})
//	b, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
//	c, _ := matrix.NewDense(2, 2)
//	_ = matrix.MulInto(c, a, b, matrix.WithVariant(matrix.Transposed), matrix.WithWorkers(2))
//	fmt.Print(c) // [1, 2]\n[3, 4]\n
package matrix
