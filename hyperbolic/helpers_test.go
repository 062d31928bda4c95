// SPDX-License-Identifier: MIT
// Package hyperbolic_test contains shared fixtures for the hyperbolic tests.

package hyperbolic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for values of order one.
const tol = 1e-9

// mustPoincare builds a ball batch or fails the test.
func mustPoincare(t *testing.T, rows [][]float64) *hyperbolic.PoincareBatch {
	t.Helper()
	b, err := hyperbolic.NewPoincareBatch(rows)
	require.NoError(t, err)

	return b
}

// mustLift builds a ball batch from rows and lifts it.
func mustLift(t *testing.T, rows [][]float64) *hyperbolic.HyperboloidBatch {
	t.Helper()
	h, err := hyperbolic.ToHyperboloid(mustPoincare(t, rows))
	require.NoError(t, err)

	return h
}

// randomBall returns n points of dimension d with norms uniform in [0, maxNorm).
func randomBall(seed int64, n, d int, maxNorm float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, d)
		var sq float64
		for j := range row {
			row[j] = rng.NormFloat64()
			sq += row[j] * row[j]
		}
		norm := math.Sqrt(sq)
		target := rng.Float64() * maxNorm
		for j := range row {
			row[j] *= target / norm
		}
		rows[i] = row
	}

	return rows
}

// euclideanNorm is the reference L2 norm.
func euclideanNorm(x []float64) float64 {
	var sq float64
	for _, v := range x {
		sq += v * v
	}

	return math.Sqrt(sq)
}
