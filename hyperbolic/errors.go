// SPDX-License-Identifier: MIT
// Package hyperbolic: sentinel error set.
// Shape problems surface the matrix sentinels (matrix.ErrDimensionMismatch,
// matrix.ErrBadShape, matrix.ErrNaNInf); the sentinels below cover the
// geometric domain of the two models.

package hyperbolic

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBatch indicates that a nil *PoincareBatch or *HyperboloidBatch was passed.
	ErrNilBatch = errors.New("hyperbolic: nil batch")

	// ErrOutsideBall signals a Poincaré point with squared norm ≥ 1, for which
	// the hyperboloid lift is undefined. Run Pullback first.
	ErrOutsideBall = errors.New("hyperbolic: point outside the open unit ball")

	// ErrOffSheet signals a hyperboloid vector whose timelike coordinate
	// cannot belong to the upper sheet (t ≤ 0).
	ErrOffSheet = errors.New("hyperbolic: point not on the upper hyperboloid sheet")

	// ErrArccoshDomain signals an arccosh argument below 1 under the Strict policy.
	ErrArccoshDomain = errors.New("hyperbolic: arccosh argument below 1")

	// ErrUnknownPolicy is returned by ParseArccoshPolicy for unrecognised names.
	ErrUnknownPolicy = errors.New("hyperbolic: unknown arccosh policy")
)

// Operation tags used as error prefixes.
const (
	opPullback        = "Pullback"
	opBoundaryCount   = "BoundaryCount"
	opToHyperboloid   = "ToHyperboloid"
	opToPoincare      = "ToPoincare"
	opMinkowski       = "MinkowskiDotMatrix"
	opMinkowskiDot    = "MinkowskiDot"
	opDistance        = "HyperbolicDistance"
	opPairwise        = "PairwiseDistances"
	opPoincareDist    = "PoincareDistance"
	opRetract         = "Retract"
	opGradient        = "DistanceGradient"
	opNewPoincare     = "NewPoincareBatch"
	opNewHyperboloid  = "NewHyperboloidBatch"
	opPoincareFromM   = "PoincareBatchFromMatrix"
	opHyperboloidFrom = "HyperboloidBatchFromMatrix"
)

// hyperbolicErrorf wraps err as "<tag>: <cause>", preserving errors.Is.
func hyperbolicErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowErrorf attaches the offending row index to a domain sentinel.
func rowErrorf(tag string, row int, err error) error {
	return fmt.Errorf("%s: row %d: %w", tag, row, err)
}
