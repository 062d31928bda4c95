// Package matrix provides a small, deterministic dense linear-algebra core.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe At/Set accessors and an
//     optional NaN/Inf rejection policy (on by default).
//   - Kernels: Sub, Mul, Transpose, Outer, MatVec, ScaleRows.
//   - Row reductions: RowNorms (overflow-safe, via VecNorm), RowSquaredNorms.
//   - Validators and sentinel errors shared by every kernel.
//
// Every kernel returns a freshly allocated *Dense and never mutates its
// inputs. Errors are sentinels wrapped as "<Op>: <cause>" and are matched
// with errors.Is.
package matrix
