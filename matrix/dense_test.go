// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hyperbolic/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions rejects non-positive shapes.
func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
	}
}

// TestNewDense_ZeroFilled checks shape accessors and zero init.
func TestNewDense_ZeroFilled(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.True(t, m.ValidatesNaNInf())
	m.Do(func(_, _ int, v float64) bool {
		require.Zero(t, v)
		return true
	})
}

// TestNewDenseFromRows covers the constructor error table and copy semantics.
func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"nil", nil, matrix.ErrBadShape},
		{"empty first row", [][]float64{{}}, matrix.ErrBadShape},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"NaN", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"Inf", [][]float64{{1}, {math.Inf(1)}}, matrix.ErrNaNInf},
		{"ok", [][]float64{{1, 2}, {3, 4}}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDenseFromRows(tc.rows)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}

	src := [][]float64{{1, 2}}
	m := MustRows(t, src)
	src[0][0] = 9
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestNewDenseFromRows_NoValidate admits non-finite values when the policy is off.
func TestNewDenseFromRows_NoValidate(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDenseFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.False(t, m.ValidatesNaNInf())
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
}

// TestDense_AtSet covers bounds and the numeric policy.
func TestDense_AtSet(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)

	require.NoError(t, m.Set(1, 0, 3.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestDense_RowCol returns independent copies.
func TestDense_RowCol(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 0
	v, _ := m.At(1, 0)
	require.Equal(t, 4.0, v)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, []float64{1, 2, 3}, m.RawRow(0))
}

// TestDense_Clone is a deep copy that keeps the policy.
func TestDense_Clone(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	c := m.Clone().(*matrix.Dense)

	require.NoError(t, c.Set(0, 0, 7))
	v, _ := m.At(0, 0)
	require.Zero(t, v)
	require.False(t, c.ValidatesNaNInf())
}

// TestDense_Induced copies blocks, allows duplicates and checks bounds.
func TestDense_Induced(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := m.Induced(matrix.IndexRange(0, 3), matrix.IndexRange(0, 2))
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{1, 2}, {4, 5}, {7, 8}}), sub)

	dup, err := m.Induced([]int{2, 2}, []int{0})
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{7}, {7}}), dup)

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{5})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced(matrix.IndexRange(0, 3), matrix.IndexRange(2, 2))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestIndexRange covers regular, empty and inverted ranges.
func TestIndexRange(t *testing.T) {
	t.Parallel()
	require.Equal(t, []int{2, 3, 4}, matrix.IndexRange(2, 5))
	require.Empty(t, matrix.IndexRange(3, 3))
	require.Empty(t, matrix.IndexRange(4, 1))
}

// TestDense_Do visits in row-major order and stops when f returns false.
func TestDense_Do(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestDense_String prints one bracketed row per line.
func TestDense_String(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
