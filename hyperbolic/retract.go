// SPDX-License-Identifier: MIT

package hyperbolic

import (
	"github.com/katalvlaran/hyperbolic/matrix"
)

// Retract moves the ball point x by a tangent step and keeps the result in
// the closed ball: y = x + tangent, and y is renormalised onto the unit
// sphere when ‖y‖ ≥ 1. Paired with DistanceGradient it is the Nickel–Kiela
// Riemannian SGD update; run Pullback on the updated batch before lifting it.
// x and tangent are not modified.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
// Complexity: O(D).
func Retract(x, tangent []float64) ([]float64, error) {
	if err := matrix.ValidateFiniteVec(x); err != nil {
		return nil, hyperbolicErrorf(opRetract, err)
	}
	if err := matrix.ValidateVecLen(tangent, len(x)); err != nil {
		return nil, hyperbolicErrorf(opRetract, err)
	}
	if err := matrix.ValidateFiniteVec(tangent); err != nil {
		return nil, hyperbolicErrorf(opRetract, err)
	}

	y := make([]float64, len(x))
	for k := range x {
		y[k] = x[k] + tangent[k]
	}
	// x+tangent can still overflow.
	if err := matrix.ValidateFiniteVec(y); err != nil {
		return nil, hyperbolicErrorf(opRetract, err)
	}

	if norm := matrix.VecNorm(y); norm >= 1 {
		for k := range y {
			y[k] /= norm
		}
	}

	return y, nil
}
