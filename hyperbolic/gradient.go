// SPDX-License-Identifier: MIT

package hyperbolic

import (
	"math"
)

// DistanceGradient returns the Riemannian gradient, in the Poincaré ball, of
// the geodesic distance d(x, v) with respect to x.
// With α = 1−‖x‖², β = 1−‖v‖² and γ the PoincareDistance arccosh argument:
//
//	∇_E = 4 / max(β·sqrt(γ²−1), ε) · ((‖v‖² − 2⟨x,v⟩ + 1)/α² · x − v/α)
//	∇_R = α²/4 · ∇_E
//
// Implementation:
//   - Stage 1: validate x and v (finite, equal non-zero length).
//   - Stage 2: squared norms clipped to [0, 1−ε], as PoincareDistance does.
//   - Stage 3: the floor ε on the denominator keeps x = v finite (gradient 0).
//
// Behavior highlights:
//   - −lr·DistanceGradient(x, v) passed to Retract moves x toward v.
//   - ∇_E is the Euclidean gradient of PoincareDistance for points inside
//     the clipped ball.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
//     matrix.ErrInvalidDimensions (empty vectors).
//
// Complexity:
//   - Time O(D), Space O(D).
func DistanceGradient(x, v []float64, opts ...Option) ([]float64, error) {
	if err := validateBallPair(x, v); err != nil {
		return nil, hyperbolicErrorf(opGradient, err)
	}
	o := gatherOptions(opts...)

	var sqx, sqv, sqd, xv, diff float64
	for k := range x {
		sqx += x[k] * x[k]
		sqv += v[k] * v[k]
		xv += x[k] * v[k]
		diff = x[k] - v[k]
		sqd += diff * diff
	}
	limit := o.Boundary()
	sqx = clip(sqx, 0, limit)
	sqv = clip(sqv, 0, limit)

	alpha := 1 - sqx
	beta := 1 - sqv
	gamma := 1 + 2*sqd/(alpha*beta)
	z := math.Max(beta*math.Sqrt(gamma*gamma-1), o.boundaryEps)
	a := (sqv - 2*xv + 1) / (alpha * alpha)
	scale := alpha * alpha / z

	grad := make([]float64, len(x))
	for k := range x {
		grad[k] = scale * (a*x[k] - v[k]/alpha)
	}

	return grad, nil
}
