// SPDX-License-Identifier: MIT

package hyperbolic

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/hyperbolic/internal/logging"
	"github.com/katalvlaran/hyperbolic/matrix"
)

// arccosh evaluates math.Acosh(x) under the configured policy.
// Arguments below 1 are clamped (ClampToOne) or rejected (Strict).
// NaN is rejected under both policies.
func (o Options) arccosh(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("arccosh(NaN): %w", ErrArccoshDomain)
	}
	if x < 1 {
		if o.policy == Strict {
			return 0, fmt.Errorf("arccosh(%g): %w", x, ErrArccoshDomain)
		}
		o.logger.LogAttrs(context.Background(), logging.LevelTrace, "arccosh argument clamped",
			slog.Float64("arg", x))
		x = 1
	}

	return math.Acosh(x), nil
}

// HyperbolicDistance returns the geodesic distance from u to every vector of
// batch: d_j = arccosh(−⟨u, v_j⟩ + δ).
// Implementation:
//   - Stage 1: validate u (finite, length batch.Cols()).
//   - Stage 2: ⟨u, v_j⟩ = (V·ũ)_j via matrix.MatVec, ũ being u with its
//     timelike coordinate negated.
//   - Stage 3: arccosh under the ArccoshPolicy.
//
// Behavior highlights:
//   - δ (WithStabilizer) shifts every distance by the same monotone bias, so
//     nearest-neighbour orderings are unchanged; d(u,u) = arccosh(1+δ).
//
// Inputs:
//   - u: one hyperboloid vector (length K).
//   - batch: N_b×K hyperboloid vectors.
//   - opts: WithStabilizer, WithArccoshPolicy.
//
// Returns:
//   - []float64 of length N_b, all ≥ 0.
//
// Errors:
//   - ErrNilBatch, matrix.ErrNilMatrix (nil u), matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf, ErrArccoshDomain (below 1 under Strict, or NaN after
//     overflow; wrapped with the index).
//
// Complexity:
//   - Time O(N_b*K), Space O(N_b + K).
func HyperbolicDistance(u []float64, batch *HyperboloidBatch, opts ...Option) ([]float64, error) {
	if batch == nil {
		return nil, hyperbolicErrorf(opDistance, ErrNilBatch)
	}
	if err := matrix.ValidateVecLen(u, batch.Cols()); err != nil {
		return nil, hyperbolicErrorf(opDistance, err)
	}
	if err := matrix.ValidateFiniteVec(u); err != nil {
		return nil, hyperbolicErrorf(opDistance, err)
	}
	o := gatherOptions(opts...)

	reflected := append([]float64(nil), u...)
	last := len(reflected) - 1
	reflected[last] = -reflected[last]
	dots, err := matrix.MatVec(batch.m, reflected)
	if err != nil {
		return nil, hyperbolicErrorf(opDistance, err)
	}

	out := make([]float64, len(dots))
	for j, dot := range dots {
		if out[j], err = o.arccosh(-dot + o.stabilizer); err != nil {
			return nil, hyperbolicErrorf(opDistance, fmt.Errorf("column %d: %w", j, err))
		}
	}

	return out, nil
}

// PairwiseDistances returns the N_a×N_b matrix D[i,j] = arccosh(−⟨a_i, b_j⟩ + δ)
// from a single Minkowski Gram product.
// Errors: as HyperbolicDistance. Complexity: O(N_a*N_b*K).
func PairwiseDistances(a, b *HyperboloidBatch, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	dots, err := MinkowskiDotMatrix(a, b)
	if err != nil {
		return nil, hyperbolicErrorf(opPairwise, err)
	}

	out, err := matrix.NewDense(dots.Shape())
	if err != nil {
		return nil, hyperbolicErrorf(opPairwise, err)
	}
	var failure error
	dots.Do(func(i, j int, dot float64) bool {
		dist, err := o.arccosh(-dot + o.stabilizer)
		if err == nil {
			err = out.Set(i, j, dist)
		}
		if err != nil {
			failure = fmt.Errorf("cell (%d,%d): %w", i, j, err)
			return false
		}
		return true
	})
	if failure != nil {
		return nil, hyperbolicErrorf(opPairwise, failure)
	}

	return out, nil
}

// PoincareDistance returns the geodesic distance between two ball points
// without leaving the ball model:
//
//	d(x,y) = arccosh(1 + 2‖x−y‖² / ((1−‖x‖²)(1−‖y‖²)))
//
// Squared norms are clipped to [0, 1−ε] so points on or past the sphere
// still yield a finite value. No δ is added; the argument is ≥ 1 by
// construction.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
// matrix.ErrInvalidDimensions (empty vectors).
// Complexity: O(D).
func PoincareDistance(x, y []float64, opts ...Option) (float64, error) {
	if err := validateBallPair(x, y); err != nil {
		return 0, hyperbolicErrorf(opPoincareDist, err)
	}
	o := gatherOptions(opts...)

	var sqx, sqy, sqd, diff float64
	for k := range x {
		sqx += x[k] * x[k]
		sqy += y[k] * y[k]
		diff = x[k] - y[k]
		sqd += diff * diff
	}
	limit := o.Boundary()
	sqx = clip(sqx, 0, limit)
	sqy = clip(sqy, 0, limit)

	d, err := o.arccosh(1 + 2*sqd/((1-sqx)*(1-sqy)))
	if err != nil {
		return 0, hyperbolicErrorf(opPoincareDist, err)
	}

	return d, nil
}

// validateBallPair checks two raw ball vectors: finite, equal and non-zero length.
func validateBallPair(x, y []float64) error {
	if err := matrix.ValidateFiniteVec(x); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(y, len(x)); err != nil {
		return err
	}
	if err := matrix.ValidateFiniteVec(y); err != nil {
		return err
	}
	if len(x) == 0 {
		return matrix.ErrInvalidDimensions
	}

	return nil
}

func clip(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
