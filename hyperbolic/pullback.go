// SPDX-License-Identifier: MIT

package hyperbolic

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/hyperbolic/internal/logging"
	"github.com/katalvlaran/hyperbolic/matrix"
)

// Pullback rescales points that sit too close to the unit sphere back inside
// the safe ball of radius 1−ε.
// Implementation:
//   - Stage 1: per-row Euclidean norms via matrix.RowNorms (finite for any finite row).
//   - Stage 2: multiplier (1−ε)/‖x‖ for rows with ‖x‖ > 1−ε, exactly 1 otherwise;
//     fitMultiplier lowers it by ulps until the scaled row measures ≤ 1−ε.
//   - Stage 3: matrix.ScaleRows into a fresh batch; log the pulled-back count.
//
// Behavior highlights:
//   - Radial projection: direction is preserved, only the magnitude shrinks.
//   - In-bound rows (the zero vector included) never reach a division.
//   - Pullback(Pullback(p)) equals Pullback(p) exactly: every output row
//     measures ≤ 1−ε under the same norm, so the second pass multiplies by 1.
//
// Inputs:
//   - p: ball batch (N×D).
//   - opts: WithBoundaryEpsilon, WithLogger.
//
// Returns:
//   - *PoincareBatch: new N×D batch; p is not modified.
//
// Errors:
//   - ErrNilBatch.
//
// Determinism:
//   - Fixed row order; one Info record per call.
//
// Complexity:
//   - Time O(N*D), Space O(N*D).
func Pullback(p *PoincareBatch, opts ...Option) (*PoincareBatch, error) {
	if p == nil {
		return nil, hyperbolicErrorf(opPullback, ErrNilBatch)
	}
	o := gatherOptions(opts...)

	norms, err := matrix.RowNorms(p.m)
	if err != nil {
		return nil, hyperbolicErrorf(opPullback, err)
	}

	boundary := o.Boundary()
	multipliers := make([]float64, len(norms))
	scratch := make([]float64, p.m.Cols())
	pulled := 0
	ctx := context.Background()
	for i, n := range norms {
		multipliers[i] = 1
		if n > boundary {
			multipliers[i] = fitMultiplier(p.m.RawRow(i), boundary/n, boundary, scratch)
			pulled++
			o.logger.LogAttrs(ctx, logging.LevelTrace, "row pulled back",
				slog.Int("row", i), slog.Float64("norm", n))
		}
	}

	o.logger.LogAttrs(ctx, slog.LevelInfo, "vectors on the boundary pulled back",
		slog.Int("pulled", pulled),
		slog.Int("points", len(norms)),
		slog.Float64("boundary", boundary),
	)

	scaled, err := matrix.ScaleRows(p.m, multipliers)
	if err != nil {
		return nil, hyperbolicErrorf(opPullback, err)
	}
	d, err := matrix.AsDense(scaled)
	if err != nil {
		return nil, hyperbolicErrorf(opPullback, err)
	}

	return &PoincareBatch{m: d}, nil
}

// maxNudges bounds the correction loop in fitMultiplier.
const maxNudges = 64

// fitMultiplier returns the largest c' ≤ c it finds such that the row scaled
// by c' has matrix.VecNorm ≤ boundary, computed on the same products
// ScaleRows writes. The step starts at one ulp of c and doubles.
func fitMultiplier(row []float64, c, boundary float64, scratch []float64) float64 {
	step := math.Nextafter(c, math.Inf(1)) - c
	for k := 0; k < maxNudges; k++ {
		for j, v := range row {
			scratch[j] = v * c
		}
		if matrix.VecNorm(scratch) <= boundary {
			return c
		}
		c -= step
		step *= 2
	}

	return c
}

// BoundaryCount reports how many points of p have norm > 1−ε, i.e. how many
// Pullback would move. It logs nothing.
// Errors: ErrNilBatch. Complexity: O(N*D).
func BoundaryCount(p *PoincareBatch, opts ...Option) (int, error) {
	if p == nil {
		return 0, hyperbolicErrorf(opBoundaryCount, ErrNilBatch)
	}
	o := gatherOptions(opts...)

	norms, err := matrix.RowNorms(p.m)
	if err != nil {
		return 0, hyperbolicErrorf(opBoundaryCount, err)
	}
	boundary := o.Boundary()
	count := 0
	for _, n := range norms {
		if n > boundary {
			count++
		}
	}

	return count, nil
}
