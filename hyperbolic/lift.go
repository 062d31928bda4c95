// SPDX-License-Identifier: MIT

package hyperbolic

import (
	"github.com/katalvlaran/hyperbolic/matrix"
)

// ToHyperboloid lifts ball points onto the upper sheet of the hyperboloid.
// For each row x with s = ‖x‖²:
//
//	h[0..D-1] = 2x / (1−s)
//	h[D]      = (1+s) / (1−s)
//
// Implementation:
//   - Stage 1: per-row squared norms via matrix.RowSquaredNorms.
//   - Stage 2: reject s ≥ 1; fill the N×(D+1) result row by row.
//
// Behavior highlights:
//   - The output has exactly one more column than the input.
//   - h[D] ≥ 1 and ⟨h,h⟩ = −1 up to rounding.
//
// Errors:
//   - ErrNilBatch.
//   - ErrOutsideBall (wrapped with the row index) when s ≥ 1.
//
// Complexity:
//   - Time O(N*D), Space O(N*D).
//
// AI-Hints:
//   - Run Pullback first when points come from an optimizer that may
//     overshoot the boundary.
func ToHyperboloid(p *PoincareBatch) (*HyperboloidBatch, error) {
	if p == nil {
		return nil, hyperbolicErrorf(opToHyperboloid, ErrNilBatch)
	}

	sq, err := matrix.RowSquaredNorms(p.m)
	if err != nil {
		return nil, hyperbolicErrorf(opToHyperboloid, err)
	}

	n, d := p.m.Rows(), p.m.Cols()
	out, err := matrix.NewDense(n, d+1)
	if err != nil {
		return nil, hyperbolicErrorf(opToHyperboloid, err)
	}

	var i, j int
	var s, denom float64
	var row []float64
	for i = 0; i < n; i++ {
		s = sq[i]
		if s >= 1 {
			return nil, rowErrorf(opToHyperboloid, i, ErrOutsideBall)
		}
		denom = 1 - s
		row = p.m.RawRow(i)
		for j = 0; j < d; j++ {
			if err = out.Set(i, j, 2*row[j]/denom); err != nil {
				return nil, hyperbolicErrorf(opToHyperboloid, err)
			}
		}
		if err = out.Set(i, d, (1+s)/denom); err != nil {
			return nil, hyperbolicErrorf(opToHyperboloid, err)
		}
	}

	return &HyperboloidBatch{m: out}, nil
}

// ToPoincare projects hyperboloid vectors back into the ball:
// x[j] = h[j] / (1 + h[D]) for j < D. It inverts ToHyperboloid.
// Implementation:
//   - Stage 1: read the timelike column; reject t ≤ 0.
//   - Stage 2: scale the spacelike block (Induced) row-wise by 1/(1+t).
//
// Errors: ErrNilBatch, ErrOffSheet (timelike coordinate ≤ 0).
// Complexity: O(N*K).
func ToPoincare(h *HyperboloidBatch) (*PoincareBatch, error) {
	if h == nil {
		return nil, hyperbolicErrorf(opToPoincare, ErrNilBatch)
	}

	n, d := h.m.Rows(), h.m.Cols()-1
	times, err := h.m.Col(d)
	if err != nil {
		return nil, hyperbolicErrorf(opToPoincare, err)
	}
	for i, t := range times {
		if t <= 0 {
			return nil, rowErrorf(opToPoincare, i, ErrOffSheet)
		}
		times[i] = 1 / (1 + t)
	}

	space, err := h.m.Induced(matrix.IndexRange(0, n), matrix.IndexRange(0, d))
	if err != nil {
		return nil, hyperbolicErrorf(opToPoincare, err)
	}
	scaled, err := matrix.ScaleRows(space, times)
	if err != nil {
		return nil, hyperbolicErrorf(opToPoincare, err)
	}
	out, err := matrix.AsDense(scaled)
	if err != nil {
		return nil, hyperbolicErrorf(opToPoincare, err)
	}

	return &PoincareBatch{m: out}, nil
}
