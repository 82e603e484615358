// Package core defines the SampleSet value, the shared error taxonomy, and the
// validators used by every interpolation package in lvinterp.
//
// A SampleSet pairs strictly increasing knots x[0..n-1] with values
// y[0..n-1]. Inputs that violate the ordering are rejected, never sorted.
//
// Errors:
//
//	ErrInvalidArgument    - mismatched lengths, too few samples, NaN/Inf, nil callables.
//	ErrDegenerateInput    - duplicate or non-increasing knots.
//	ErrOutOfDomain        - evaluation outside [x[0], x[n-1]].
//	ErrArithmeticOverflow - factorial beyond float64 range.
//
// All sentinels are wrapped with method context; match them with errors.Is:
//
//	if errors.Is(err, core.ErrOutOfDomain) {
//		// clamp the query or report it
//	}
//
// The Interpolator interface is the capability implemented by
// spline.Model and lagrange.Polynomial.
package core
