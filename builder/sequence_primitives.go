// SPDX-License-Identifier: MIT
// Package: lvinterp/builder
//
// sequence_primitives.go - shared helpers for the sample-set generators.
//
// Purpose:
//   - Evenly spaced grids (Linspace) reused by the generators and by the
//     Lagrange error estimator's probe grid.
//   - Deterministic RNG selection with cfg.rng priority.
//   - Turning knots into a validated core.SampleSet.
//
// Contract:
//   - Pure helpers (no global state).

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvinterp/core"
)

// Linspace returns n evenly spaced points from a to b. For n ≥ 2 both
// endpoints are included and the last point is exactly b. n == 1 yields [a];
// n < 1 yields nil.
//
// Complexity: O(n) time, O(n) space.
func Linspace(a, b float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = a

		return out
	}

	step := (b - a) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = a + step*float64(i)
	}
	out[n-1] = b

	return out
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by DefaultNoiseSeed. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(DefaultNoiseSeed))
}

// sample evaluates f at every knot, applies trend and noise, and validates
// the result as a SampleSet.
func sample(method string, f core.Func, x []float64, cfg builderConfig) (*core.SampleSet, error) {
	y := make([]float64, len(x))

	var rng *rand.Rand
	if cfg.noiseSigma > 0 {
		rng = rngFrom(cfg)
	}

	for i, xi := range x {
		v := f(xi)
		v += cfg.trendK * xi
		if rng != nil {
			v += cfg.noiseSigma * rng.NormFloat64()
		}
		y[i] = v
	}

	s, err := core.NewSampleSet(x, y)
	if err != nil {
		return nil, core.Errorf(method, err, "")
	}

	return s, nil
}
