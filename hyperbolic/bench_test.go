// SPDX-License-Identifier: MIT

package hyperbolic_test

import (
	"testing"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
	"github.com/katalvlaran/hyperbolic/matrix"
)

var (
	sinkBatch  *hyperbolic.PoincareBatch
	sinkLifted *hyperbolic.HyperboloidBatch
	sinkDense  *matrix.Dense
	sinkVec    []float64
)

const (
	benchN   = 256
	benchDim = 16
)

func benchBall(b *testing.B) *hyperbolic.PoincareBatch {
	b.Helper()
	p, err := hyperbolic.NewPoincareBatch(randomBall(99, benchN, benchDim, 1.2))
	if err != nil {
		b.Fatal(err)
	}

	return p
}

func benchLifted(b *testing.B) *hyperbolic.HyperboloidBatch {
	b.Helper()
	safe, err := hyperbolic.Pullback(benchBall(b))
	if err != nil {
		b.Fatal(err)
	}
	h, err := hyperbolic.ToHyperboloid(safe)
	if err != nil {
		b.Fatal(err)
	}

	return h
}

func BenchmarkPullback(b *testing.B) {
	p := benchBall(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBatch, _ = hyperbolic.Pullback(p)
	}
}

func BenchmarkToHyperboloid(b *testing.B) {
	safe, err := hyperbolic.Pullback(benchBall(b))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkLifted, _ = hyperbolic.ToHyperboloid(safe)
	}
}

func BenchmarkMinkowskiDotMatrix(b *testing.B) {
	h := benchLifted(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkDense, _ = hyperbolic.MinkowskiDotMatrix(h, h)
	}
}

func BenchmarkHyperbolicDistance(b *testing.B) {
	h := benchLifted(b)
	u, _ := h.Point(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec, _ = hyperbolic.HyperbolicDistance(u, h)
	}
}
