// SPDX-License-Identifier: MIT

package hyperbolic

import (
	"github.com/katalvlaran/hyperbolic/matrix"
)

// MinkowskiDotMatrix returns the N_a×N_b matrix of Minkowski inner products
//
//	G[i,j] = Σ_{k<K-1} a[i,k]·b[j,k] − a[i,K-1]·b[j,K-1]
//
// Implementation:
//   - Stage 1: validate both batches and equal column counts K.
//   - Stage 2: spacelike Gram block A_s·B_sᵀ via Induced → Transpose → Mul.
//   - Stage 3: subtract the timelike outer product a_t ⊗ b_t.
//
// Behavior highlights:
//   - G(a,b)[i,j] == G(b,a)[j,i].
//   - For two points of the upper sheet G ≤ −1, with equality iff they coincide.
//
// Errors:
//   - ErrNilBatch, matrix.ErrDimensionMismatch (K differs).
//
// Determinism:
//   - Fixed i→k→j accumulation inside matrix.Mul.
//
// Complexity:
//   - Time O(N_a*N_b*K), Space O(N_a*N_b + (N_a+N_b)*K).
func MinkowskiDotMatrix(a, b *HyperboloidBatch) (*matrix.Dense, error) {
	if a == nil || b == nil {
		return nil, hyperbolicErrorf(opMinkowski, ErrNilBatch)
	}
	if err := matrix.ValidateSameCols(a.m, b.m); err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}

	rank := a.m.Cols() - 1 // index of the timelike column
	aSpace, err := a.m.Induced(matrix.IndexRange(0, a.m.Rows()), matrix.IndexRange(0, rank))
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}
	bSpace, err := b.m.Induced(matrix.IndexRange(0, b.m.Rows()), matrix.IndexRange(0, rank))
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}
	bSpaceT, err := matrix.Transpose(bSpace)
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}
	euclidean, err := matrix.Mul(aSpace, bSpaceT)
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}

	aTime, err := a.m.Col(rank)
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}
	bTime, err := b.m.Col(rank)
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}
	timelike, err := matrix.Outer(aTime, bTime)
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}

	gram, err := matrix.Sub(euclidean, timelike)
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}

	d, err := matrix.AsDense(gram)
	if err != nil {
		return nil, hyperbolicErrorf(opMinkowski, err)
	}

	return d, nil
}

// MinkowskiDot returns ⟨u,v⟩ for two K-vectors (last coordinate timelike).
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
// matrix.ErrBadShape (K < 2).
// Complexity: O(K).
func MinkowskiDot(u, v []float64) (float64, error) {
	if err := matrix.ValidateFiniteVec(v); err != nil {
		return 0, hyperbolicErrorf(opMinkowskiDot, err)
	}
	if err := matrix.ValidateVecLen(u, len(v)); err != nil {
		return 0, hyperbolicErrorf(opMinkowskiDot, err)
	}
	if err := matrix.ValidateFiniteVec(u); err != nil {
		return 0, hyperbolicErrorf(opMinkowskiDot, err)
	}
	if len(u) < minHyperboloidCols {
		return 0, hyperbolicErrorf(opMinkowskiDot, matrix.ErrBadShape)
	}

	last := len(u) - 1
	acc := matrix.ZeroSum
	for k := 0; k < last; k++ {
		acc += u[k] * v[k]
	}

	return acc - u[last]*v[last], nil
}
