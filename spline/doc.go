// Package spline builds and evaluates natural cubic splines.
//
// 🚀 What is a natural cubic spline?
//
//	A piecewise cubic S that passes through every sample (x[i], y[i]), has
//	continuous first and second derivatives at interior knots, and a zero
//	second derivative at both ends of the domain.
//
// ✨ Key features:
//   - BuildNatural: O(n) tridiagonal solve, no pivoting required
//   - Model: immutable, concurrency-safe, implements core.Interpolator
//   - Eval / EvalAll: O(log n) interval lookup by binary search
//   - Diff: first, second and third derivatives of the fitted spline
//   - No extrapolation: points outside [x[0], x[n-1]] fail with core.ErrOutOfDomain
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvinterp/spline"
//
//	m, err := spline.BuildNatural([]float64{1, 2, 3, 4}, []float64{1, 4, 9, 16})
//	v, err := m.Eval(2.5) // 6.2
//
// Performance:
//
//   - Build: O(n) time, O(n) memory
//   - Eval:  O(log n) time, O(1) memory
package spline
