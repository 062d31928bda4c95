// SPDX-License-Identifier: MIT
// Package matrix: row-wise reductions and element-wise comparisons.
//
// Purpose:
//   - Per-row Euclidean norms (the building block of ball/sphere projections),
//     scaled so that large finite rows stay finite.
//   - Per-row scaling by a vector of multipliers.
//   - Tolerance-based comparison (AllClose) for tests and invariants.

package matrix

import "math"

const (
	opRowNorms   = "RowNorms"
	opRowSqNorms = "RowSquaredNorms"
	opScaleRows  = "ScaleRows"
	opAllClose   = "AllClose"
)

// RowSquaredNorms returns s[i] = Σ_j m[i,j]² for every row.
// Errors: ErrNilMatrix. Determinism: fixed i→j accumulation order.
// Complexity: Time O(r*c), Space O(r).
func RowSquaredNorms(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSqNorms, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	var i, j int
	var acc, v float64
	if d, ok := m.(*Dense); ok {
		var row []float64
		for i = 0; i < rows; i++ {
			row = d.RawRow(i)
			acc = ZeroSum
			for j = 0; j < cols; j++ {
				acc += row[j] * row[j]
			}
			out[i] = acc
		}

		return out, nil
	}

	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSqNorms, err)
			}
			acc += v * v
		}
		out[i] = acc
	}

	return out, nil
}

// RowNorms returns the Euclidean (L2) norm of every row via VecNorm, so
// rows with large finite entries do not overflow to +Inf.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r+c).
func RowNorms(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowNorms, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = VecNorm(d.RawRow(i))
		}

		return out, nil
	}

	row := make([]float64, cols)
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if row[j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowNorms, err)
			}
		}
		out[i] = VecNorm(row)
	}

	return out, nil
}

// VecNorm returns ‖x‖₂ computed as s·sqrt(Σ(x_k/s)²) with s = max|x_k|.
// The result is finite for every finite x. NaN entries yield NaN.
// Complexity: Time O(n), Space O(1).
func VecNorm(x []float64) float64 {
	var scale float64
	for _, v := range x {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if a := math.Abs(v); a > scale {
			scale = a
		}
	}
	if scale == 0 || math.IsInf(scale, 1) {
		return scale
	}

	var sum, r float64
	for _, v := range x {
		r = v / scale
		sum += r * r
	}

	return scale * math.Sqrt(sum)
}

// ScaleRows returns a fresh Dense with row i multiplied by scale[i].
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateVecLen(scale, Rows()).
//   - Stage 2: fixed i→j multiply into a new buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ScaleRows(m Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(scale, m.Rows()); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	var i, j, base int
	var v float64
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleRows, err)
			}
			res.data[base+j] = v * scale[i]
		}
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
