// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hyperbolic/matrix"
)

var (
	sinkMatrix matrix.Matrix
	sinkFloats []float64
)

func BenchmarkMul_Dense(b *testing.B) {
	x := RandomDense(b, 1, 128, 64)
	y := RandomDense(b, 2, 64, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMatrix, _ = matrix.Mul(x, y)
	}
}

func BenchmarkMul_Fallback(b *testing.B) {
	x := RandomDense(b, 1, 128, 64)
	y := RandomDense(b, 2, 64, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMatrix, _ = matrix.Mul(hide{x}, hide{y})
	}
}

func BenchmarkRowNorms(b *testing.B) {
	x := RandomDense(b, 3, 1024, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkFloats, _ = matrix.RowNorms(x)
	}
}
