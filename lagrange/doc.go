// Package lagrange evaluates Lagrange interpolation polynomials and estimates
// their interpolation error.
//
// 🚀 What is Lagrange interpolation?
//
//	Given n samples (x[i], y[i]) with distinct knots, there is exactly one
//	polynomial P of degree ≤ n-1 with P(x[i]) = y[i]. Lagrange's form writes
//	it as a sum of basis terms:
//	  P(t) = Σ y[i] · Π_{j≠i} (t - x[j]) / (x[i] - x[j])
//
// ✨ Key features:
//   - Evaluate: stateless O(n²) evaluation at a single point
//   - Polynomial: validate once, evaluate many times (core.Interpolator)
//   - EstimateError: a-priori error estimate from a derivative bound
//   - Factorial with explicit overflow detection
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvinterp/lagrange"
//
//	v, err := lagrange.Evaluate(x, y, 6.5)
//	e, err := lagrange.EstimateError(bound, x, 6.5, len(x)-1)
//
// Note on EstimateError:
//
//	The maximum of the derivative bound is taken over the knots only, not
//	over the whole interpolation interval. This is a known approximation;
//	use WithProbeGrid(k) to add interior probe points.
//
// Performance:
//
//   - Time:   O(n²) per evaluation
//   - Memory: O(1) for Evaluate, O(n) for Polynomial
package lagrange
