// Package hyperbolic converts point batches between the Poincaré ball model
// and the hyperboloid (Minkowski) model of hyperbolic space, and measures
// geodesic distances on the hyperboloid.
//
// 🚀 Pipeline
//
//	ball batch ──Pullback──▶ safe ball batch ──ToHyperboloid──▶ hyperboloid batch
//	hyperboloid batches ──MinkowskiDotMatrix──▶ Gram matrix ──arccosh──▶ distances
//
// ✨ Key features:
//   - Distinct PoincareBatch / HyperboloidBatch types so the two models cannot be mixed up.
//   - Pullback: radial projection of points with ‖x‖ > 1−ε onto the sphere of radius 1−ε.
//   - ToHyperboloid / ToPoincare: the lift x ↦ (2x, 1+‖x‖²)/(1−‖x‖²) and its inverse.
//   - MinkowskiDotMatrix: all-pairs ⟨u,v⟩ = Σ u_k v_k − u_t v_t via matrix kernels.
//   - HyperbolicDistance / PairwiseDistances: arccosh(−⟨u,v⟩ + δ) with a
//     configurable policy for arguments below 1 (ClampToOne or Strict).
//   - PoincareDistance, DistanceGradient and Retract for work that stays
//     inside the ball (one Riemannian SGD step).
//
// ⚙️ Usage:
//
//	ball, _ := hyperbolic.NewPoincareBatch([][]float64{{0.5, 0}, {0, 0.999999}})
//	safe, _ := hyperbolic.Pullback(ball, hyperbolic.WithLogger(logger))
//	lifted, _ := hyperbolic.ToHyperboloid(safe)
//	u, _ := lifted.Point(0)
//	dist, _ := hyperbolic.HyperbolicDistance(u, lifted)
//
// Numeric constants: ε = DefaultBoundaryEpsilon (1e-5), δ = DefaultStabilizer (1e-5).
// Every operation is synchronous, allocation-explicit and deterministic.
package hyperbolic
