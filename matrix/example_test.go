// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/matrix"
)

// ExampleMul multiplies a 2×2 block by its transpose.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	at, _ := matrix.Transpose(a)
	g, _ := matrix.Mul(a, at)
	fmt.Print(g)
	// Output:
	// [5, 11]
	// [11, 25]
}

// ExampleRowNorms computes per-row Euclidean norms.
func ExampleRowNorms() {
	m, _ := matrix.NewDenseFromRows([][]float64{{3, 4}, {0, 0}})
	norms, _ := matrix.RowNorms(m)
	fmt.Println(norms)
	// Output:
	// [5 0]
}
