// SPDX-License-Identifier: MIT

// Command lvinterp evaluates Lagrange polynomials and natural cubic splines
// on built-in demos or sample files.
//
//	lvinterp menu                       # interactive 1/2 choice
//	lvinterp lagrange --dataset lnpow --point 6.5
//	lvinterp spline --dataset data.yaml --point 1.5 --point 2.75
//	lvinterp generate --func runge --method chebyshev -n 9 > runge.yaml
//	lvinterp example-config > lvinterp.gcfg
package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("lvinterp failed", "error", err)
		os.Exit(1)
	}
}
