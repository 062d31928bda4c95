// SPDX-License-Identifier: MIT

// Package hyperbolic: functional configuration of the numeric stabilizers.
// This file defines:
//   - the documented defaults (ε for the ball boundary, δ for arccosh),
//   - ArccoshPolicy (what to do when −⟨u,v⟩+δ < 1),
//   - Option / Options and the WithX constructors.
//
// Constructors panic only on nonsensical values (programmer error); the
// operations themselves never panic on user data.
package hyperbolic

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBoundaryEpsilon is ε: points are kept at Euclidean norm ≤ 1−ε.
	DefaultBoundaryEpsilon = 1e-5

	// DefaultStabilizer is δ, added to −⟨u,v⟩ before arccosh.
	DefaultStabilizer = 1e-5

	// DefaultArccoshPolicy resolves arguments below 1 by clamping.
	DefaultArccoshPolicy = ClampToOne
)

const (
	panicBoundaryEpsilonInvalid = "hyperbolic: WithBoundaryEpsilon: eps must be finite and in (0, 1)"
	panicStabilizerInvalid      = "hyperbolic: WithStabilizer: delta must be finite, non-negative"
	panicPolicyInvalid          = "hyperbolic: WithArccoshPolicy: unknown policy"
)

// ArccoshPolicy decides how arccosh treats arguments below 1, which can only
// appear through floating-point error for points on the upper sheet.
type ArccoshPolicy int

const (
	// ClampToOne maps any argument below 1 to 1 (distance 0).
	ClampToOne ArccoshPolicy = iota
	// Strict fails with ErrArccoshDomain.
	Strict
)

// Policy names accepted by ParseArccoshPolicy and printed by String.
const (
	policyNameClamp  = "clamp"
	policyNameStrict = "strict"
)

// String returns the canonical policy name.
func (p ArccoshPolicy) String() string {
	switch p {
	case ClampToOne:
		return policyNameClamp
	case Strict:
		return policyNameStrict
	default:
		return fmt.Sprintf("ArccoshPolicy(%d)", int(p))
	}
}

// ParseArccoshPolicy maps "clamp" or "strict" (case-insensitive) to a policy.
func ParseArccoshPolicy(s string) (ArccoshPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case policyNameClamp:
		return ClampToOne, nil
	case policyNameStrict:
		return Strict, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
	}
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	boundaryEps float64       // ε in (0,1)
	stabilizer  float64       // δ ≥ 0
	policy      ArccoshPolicy // below-1 handling
	logger      *slog.Logger  // diagnostics sink; never nil after gatherOptions
}

// Boundary returns the largest admissible Euclidean norm, 1−ε.
func (o Options) Boundary() float64 { return 1 - o.boundaryEps }

// BoundaryEpsilon returns ε.
func (o Options) BoundaryEpsilon() float64 { return o.boundaryEps }

// Stabilizer returns δ.
func (o Options) Stabilizer() float64 { return o.stabilizer }

// Policy returns the arccosh policy.
func (o Options) Policy() ArccoshPolicy { return o.policy }

// WithBoundaryEpsilon sets ε, the distance kept from the unit sphere.
// Implementation:
//   - Stage 1: validate 0 < eps < 1 and finite.
//   - Stage 2: return a setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - Smaller ε lets points sit closer to the boundary; the lift then produces
//     coordinates of order 1/ε, so keep ε ≥ 1e-7 for float64 work.
func WithBoundaryEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 || eps >= 1 {
		panic(panicBoundaryEpsilonInvalid)
	}

	return func(o *Options) { o.boundaryEps = eps }
}

// WithStabilizer sets δ, the constant added to −⟨u,v⟩ before arccosh.
// δ = 0 yields the exact geodesic distance.
func WithStabilizer(delta float64) Option {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		panic(panicStabilizerInvalid)
	}

	return func(o *Options) { o.stabilizer = delta }
}

// WithArccoshPolicy selects ClampToOne or Strict.
func WithArccoshPolicy(p ArccoshPolicy) Option {
	if p != ClampToOne && p != Strict {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithLogger routes diagnostics (e.g. the pullback count) to l.
// A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters on top of defaults; last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		boundaryEps: DefaultBoundaryEpsilon,
		stabilizer:  DefaultStabilizer,
		policy:      DefaultArccoshPolicy,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger
	}

	return o
}

// discardLogger is the silent default sink.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
