package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/parbench/matrix"
)

// ExampleMulInto multiplies by the identity with the transposed variant
// across two workers.
func ExampleMulInto() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 0, 0, 1})
	b, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	c, _ := matrix.NewDense(2, 2)

	if err := matrix.MulInto(c, a, b, matrix.WithVariant(matrix.Transposed), matrix.WithWorkers(2)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [1, 2]
	// [3, 4]
}

// ExampleTranspose shows B2[j][i] = B[i][j].
func ExampleTranspose() {
	b, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	bt, _ := matrix.Transpose(b)
	fmt.Print(bt)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
