// SPDX-License-Identifier: MIT

package hyperbolic_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
	"github.com/katalvlaran/hyperbolic/internal/logging"
	"github.com/katalvlaran/hyperbolic/matrix"
	"github.com/stretchr/testify/require"
)

// TestPullback_ConcreteExample checks that an inner point is untouched and a
// point past the threshold lands exactly on norm 1−1e-5.
func TestPullback_ConcreteExample(t *testing.T) {
	in := mustPoincare(t, [][]float64{{0.9, 0.0}, {0.999999, 0.0}})

	out, err := hyperbolic.Pullback(in)
	require.NoError(t, err)

	p0, err := out.Point(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0.9, 0.0}, p0) // multiplier is exactly 1

	p1, err := out.Point(1)
	require.NoError(t, err)
	require.InDelta(t, 1-hyperbolic.DefaultBoundaryEpsilon, euclideanNorm(p1), 1e-15)
	require.InDelta(t, 0.99999, p1[0], 1e-15)
	require.Zero(t, p1[1])
}

// TestPullback_ZeroVector verifies the zero vector passes through without a division.
func TestPullback_ZeroVector(t *testing.T) {
	out, err := hyperbolic.Pullback(mustPoincare(t, [][]float64{{0, 0, 0}}))
	require.NoError(t, err)
	p, err := out.Point(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, p)
}

// TestPullback_Properties covers norm bound, idempotence and direction preservation.
func TestPullback_Properties(t *testing.T) {
	rows := randomBall(7, 200, 5, 1.5) // roughly a third land outside the ball
	in := mustPoincare(t, rows)
	boundary := 1 - hyperbolic.DefaultBoundaryEpsilon

	once, err := hyperbolic.Pullback(in)
	require.NoError(t, err)
	twice, err := hyperbolic.Pullback(once)
	require.NoError(t, err)

	for i := 0; i < in.Len(); i++ {
		x, _ := in.Point(i)
		y, _ := once.Point(i)
		z, _ := twice.Point(i)

		// Norm bound.
		require.LessOrEqual(t, euclideanNorm(y), boundary+1e-12, "row %d", i)

		// Idempotence, bit for bit.
		require.Equal(t, y, z, "row %d", i)

		// Direction: y = c·x with c > 0.
		nx, ny := euclideanNorm(x), euclideanNorm(y)
		if nx == 0 {
			continue
		}
		require.Greater(t, ny, 0.0)
		for j := range x {
			require.InDelta(t, x[j]/nx, y[j]/ny, 1e-12, "row %d col %d", i, j)
		}
		// Never grows a point.
		require.LessOrEqual(t, ny, nx+1e-15)
	}
}

// TestPullback_HugeFiniteRows scales rows whose squared norm overflows
// float64 onto the boundary sphere instead of collapsing them to zero.
func TestPullback_HugeFiniteRows(t *testing.T) {
	in := mustPoincare(t, [][]float64{{1e200, 0}, {-3e300, 4e300}})
	boundary := 1 - hyperbolic.DefaultBoundaryEpsilon

	out, err := hyperbolic.Pullback(in)
	require.NoError(t, err)

	p0, _ := out.Point(0)
	require.InDelta(t, boundary, p0[0], 1e-15)
	require.Zero(t, p0[1])

	p1, _ := out.Point(1)
	require.InDelta(t, -0.6*boundary, p1[0], 1e-15)
	require.InDelta(t, 0.8*boundary, p1[1], 1e-15)
	require.LessOrEqual(t, matrix.VecNorm(p1), boundary)

	n, err := hyperbolic.BoundaryCount(in)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// TestPullback_OutputWithinBoundary checks the bound with the norm Pullback
// itself uses, so a second pass moves nothing.
func TestPullback_OutputWithinBoundary(t *testing.T) {
	in := mustPoincare(t, randomBall(11, 500, 64, 3))
	boundary := 1 - hyperbolic.DefaultBoundaryEpsilon

	once, err := hyperbolic.Pullback(in)
	require.NoError(t, err)
	for i, p := range once.Points() {
		require.LessOrEqual(t, matrix.VecNorm(p), boundary, "row %d", i)
	}

	n, err := hyperbolic.BoundaryCount(once)
	require.NoError(t, err)
	require.Zero(t, n)
}

// TestPullback_DoesNotMutateInput ensures value semantics.
func TestPullback_DoesNotMutateInput(t *testing.T) {
	in := mustPoincare(t, [][]float64{{3, 4}})
	_, err := hyperbolic.Pullback(in)
	require.NoError(t, err)
	p, _ := in.Point(0)
	require.Equal(t, []float64{3, 4}, p)
}

// TestPullback_CustomEpsilon moves the threshold.
func TestPullback_CustomEpsilon(t *testing.T) {
	in := mustPoincare(t, [][]float64{{0.95, 0}, {0.85, 0}})
	out, err := hyperbolic.Pullback(in, hyperbolic.WithBoundaryEpsilon(0.1))
	require.NoError(t, err)

	p0, _ := out.Point(0)
	p1, _ := out.Point(1)
	require.InDelta(t, 0.9, p0[0], 1e-15)
	require.Equal(t, 0.85, p1[0])
}

// TestPullback_LogsCount checks the diagnostic record routed through slog.
func TestPullback_LogsCount(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	in := mustPoincare(t, [][]float64{{0.5, 0}, {1, 0}, {0, -2}})
	_, err := hyperbolic.Pullback(in, hyperbolic.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "vectors on the boundary pulled back")
	require.Contains(t, out, "pulled=2")
	require.Contains(t, out, "points=3")
}

// TestPullback_TraceRows emits one trace record per moved row.
func TestPullback_TraceRows(t *testing.T) {
	var buf bytes.Buffer
	in := mustPoincare(t, [][]float64{{0.5, 0}, {1, 0}})
	_, err := hyperbolic.Pullback(in, hyperbolic.WithLogger(logging.NewLogger("trace", &buf)))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "level=TRACE")
	require.Contains(t, out, "row=1")
	require.NotContains(t, out, "row=0")
}

// TestPullback_SilentByDefault makes sure nothing is logged without a logger.
func TestPullback_SilentByDefault(t *testing.T) {
	_, err := hyperbolic.Pullback(mustPoincare(t, [][]float64{{2, 0}}), hyperbolic.WithLogger(nil))
	require.NoError(t, err)
}

// TestBoundaryCount agrees with the number of rows Pullback moves.
func TestBoundaryCount(t *testing.T) {
	in := mustPoincare(t, [][]float64{{0.5, 0}, {0.999999, 0}, {0, 0.99999}, {0, 1.2}})

	n, err := hyperbolic.BoundaryCount(in)
	require.NoError(t, err)
	require.Equal(t, 2, n) // 0.99999 sits exactly on 1−ε and is not moved

	n, err = hyperbolic.BoundaryCount(in, hyperbolic.WithBoundaryEpsilon(0.6))
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

// TestPullback_NilBatch returns the sentinel rather than panicking.
func TestPullback_NilBatch(t *testing.T) {
	_, err := hyperbolic.Pullback(nil)
	require.ErrorIs(t, err, hyperbolic.ErrNilBatch)

	_, err = hyperbolic.BoundaryCount(nil)
	require.ErrorIs(t, err, hyperbolic.ErrNilBatch)
}
