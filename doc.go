// Package hyperbolic is the module root of a small toolkit for hyperbolic
// embeddings: batches of points in the Poincaré ball, their lift onto the
// hyperboloid (Lorentz) model, and geodesic distances computed there.
//
// 🚀 What is in the module?
//
//	A deterministic, allocation-explicit library plus a thin CLI:
//		• Boundary pullback: keep ball points at norm ≤ 1−ε
//		• Lift and inverse lift between ball and hyperboloid
//		• Minkowski inner-product (Gram) matrices
//		• Hyperbolic distances with a configurable arccosh policy
//		• Ball-side distance, its Riemannian gradient and the retraction step
//
// ✨ Why split it this way?
//
//   - matrix/ carries the dense linear algebra and knows nothing about geometry.
//   - hyperbolic/ owns the two models and their typed batches.
//   - Library code never logs unless handed a *slog.Logger.
//
// Layout:
//
//	matrix/            — row-major Dense, validators, Mul/Transpose/Outer, row norms
//	hyperbolic/        — Pullback, ToHyperboloid, MinkowskiDotMatrix, HyperbolicDistance, …
//	internal/config/   — YAML + environment configuration of ε, δ and the arccosh policy
//	internal/logging/  — leveled slog setup (trace … error)
//	cmd/hyperbolic/    — cobra CLI over the library
//	examples/          — runnable walkthrough of an embedding update
//
// Quick example:
//
//	ball, _ := hyperbolic.NewPoincareBatch([][]float64{{0.5, 0}, {0, 0.999999}})
//	safe, _ := hyperbolic.Pullback(ball)
//	lifted, _ := hyperbolic.ToHyperboloid(safe)
//	u, _ := lifted.Point(0)
//	dist, _ := hyperbolic.HyperbolicDistance(u, lifted)
//	// dist[0] = arccosh(1+δ) ≈ 0.0045, dist[1] ≈ 12.72
package hyperbolic
