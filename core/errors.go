// SPDX-License-Identifier: MIT
// Package: lvinterp/core
//
// errors.go: sentinel errors shared by every interpolation package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` (see errorf below); the
//     sentinel itself never carries formatted parameters.
//   • Algorithms MUST NOT panic on user input; option constructors (WithX)
//     are the only place where a panic is allowed.
//
// Priority (when several validations fail at once):
//   length mismatch → too few samples → NaN/Inf → duplicate/non-increasing knots
//   → domain checks → overflow.

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates mismatched sample lengths, too few samples,
// a nil callable, a negative order, or a non-finite value where a finite one
// is required.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* fix the call site */ }.
var ErrInvalidArgument = errors.New("lvinterp: invalid argument")

// ErrDegenerateInput indicates duplicate or non-monotonic knots: a zero
// denominator in a Lagrange basis term or a non-positive step in a spline.
var ErrDegenerateInput = errors.New("lvinterp: degenerate input")

// ErrOutOfDomain indicates a query point outside [x[0], x[n-1]].
// Extrapolation is never performed.
var ErrOutOfDomain = errors.New("lvinterp: point out of domain")

// ErrArithmeticOverflow indicates that an intermediate result (factorial)
// no longer fits in a float64.
var ErrArithmeticOverflow = errors.New("lvinterp: arithmetic overflow")

// Errorf wraps err with the given method context.
// The result reads "<method>: <formatted message>: <err>" and still matches
// the wrapped sentinel through errors.Is.
//
// Complexity: O(len(format) + Σlen(args)).
func Errorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
