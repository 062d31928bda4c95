// SPDX-License-Identifier: MIT

// Package hyperbolic: typed point batches.
//
// PoincareBatch and HyperboloidBatch both wrap a row-major *matrix.Dense but
// are distinct types, so a ball batch cannot be handed to a routine that
// expects hyperboloid vectors (and vice versa). Batches are immutable after
// construction: accessors hand out copies.
package hyperbolic

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/matrix"
)

// minHyperboloidCols is the smallest K with at least one spacelike coordinate.
const minHyperboloidCols = 2

// PoincareBatch is an N×D batch of points of the Poincaré ball model (D ≥ 1).
// Entries are finite; norms are not checked here (Pullback and
// ToHyperboloid own that contract).
type PoincareBatch struct {
	m *matrix.Dense
}

// HyperboloidBatch is an N×K batch of hyperboloid vectors, K = D+1 ≥ 2,
// whose last column is the timelike coordinate.
type HyperboloidBatch struct {
	m *matrix.Dense
}

// NewPoincareBatch copies rows into a new batch.
// Errors: matrix.ErrBadShape (empty/ragged), matrix.ErrNaNInf.
// Complexity: O(N*D).
func NewPoincareBatch(rows [][]float64) (*PoincareBatch, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, hyperbolicErrorf(opNewPoincare, err)
	}

	return &PoincareBatch{m: m}, nil
}

// PoincareBatchFromMatrix copies any Matrix into a new batch after checking
// every entry is finite.
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf.
func PoincareBatchFromMatrix(m matrix.Matrix) (*PoincareBatch, error) {
	d, err := finiteCopy(m)
	if err != nil {
		return nil, hyperbolicErrorf(opPoincareFromM, err)
	}

	return &PoincareBatch{m: d}, nil
}

// NewHyperboloidBatch copies rows into a new batch. Rows need at least two
// coordinates (one spacelike, one timelike).
// Errors: matrix.ErrBadShape, matrix.ErrNaNInf.
func NewHyperboloidBatch(rows [][]float64) (*HyperboloidBatch, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, hyperbolicErrorf(opNewHyperboloid, err)
	}
	if m.Cols() < minHyperboloidCols {
		return nil, hyperbolicErrorf(opNewHyperboloid,
			fmt.Errorf("%d columns, want at least %d: %w", m.Cols(), minHyperboloidCols, matrix.ErrBadShape))
	}

	return &HyperboloidBatch{m: m}, nil
}

// HyperboloidBatchFromMatrix copies any Matrix with at least two columns
// into a new batch.
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, matrix.ErrBadShape.
func HyperboloidBatchFromMatrix(m matrix.Matrix) (*HyperboloidBatch, error) {
	d, err := finiteCopy(m)
	if err != nil {
		return nil, hyperbolicErrorf(opHyperboloidFrom, err)
	}
	if d.Cols() < minHyperboloidCols {
		return nil, hyperbolicErrorf(opHyperboloidFrom,
			fmt.Errorf("%d columns, want at least %d: %w", d.Cols(), minHyperboloidCols, matrix.ErrBadShape))
	}

	return &HyperboloidBatch{m: d}, nil
}

// finiteCopy validates m and returns an independent *Dense copy of it.
func finiteCopy(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, err
	}

	return matrix.AsDense(m.Clone())
}

// Len returns N, the number of points.
func (b *PoincareBatch) Len() int { return b.m.Rows() }

// Dim returns D, the ball dimension.
func (b *PoincareBatch) Dim() int { return b.m.Cols() }

// Point returns a copy of point i.
func (b *PoincareBatch) Point(i int) ([]float64, error) { return b.m.Row(i) }

// Matrix returns an independent copy of the underlying N×D matrix.
func (b *PoincareBatch) Matrix() *matrix.Dense { return b.m.Clone().(*matrix.Dense) }

// Points returns all points as a fresh [][]float64.
func (b *PoincareBatch) Points() [][]float64 { return copyRows(b.m) }

// Len returns N, the number of points.
func (b *HyperboloidBatch) Len() int { return b.m.Rows() }

// Cols returns K, the ambient Minkowski dimension.
func (b *HyperboloidBatch) Cols() int { return b.m.Cols() }

// Dim returns D = K−1, the hyperbolic dimension.
func (b *HyperboloidBatch) Dim() int { return b.m.Cols() - 1 }

// Point returns a copy of vector i.
func (b *HyperboloidBatch) Point(i int) ([]float64, error) { return b.m.Row(i) }

// Matrix returns an independent copy of the underlying N×K matrix.
func (b *HyperboloidBatch) Matrix() *matrix.Dense { return b.m.Clone().(*matrix.Dense) }

// Points returns all vectors as a fresh [][]float64.
func (b *HyperboloidBatch) Points() [][]float64 { return copyRows(b.m) }

func copyRows(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = append([]float64(nil), m.RawRow(i)...)
	}

	return out
}
