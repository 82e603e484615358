// SPDX-License-Identifier: MIT
// Package: lvinterp/builder
//
// errors.go: error construction for the builder package.
//
// Error policy:
//   • The builder does not define its own sentinels; it reuses the core
//     taxonomy so callers branch the same way for every package:
//     core.ErrInvalidArgument for bad sizes/intervals/functions and
//     core.ErrDegenerateInput for generated knots that collapse.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"fmt"
)

// builderErrorf wraps err with the given method context and message.
// It returns an error of the form "<Method>: <formatted message>: <err>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
