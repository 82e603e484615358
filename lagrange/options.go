// SPDX-License-Identifier: MIT
// Package: lvinterp/lagrange
//
// options.go: functional options for the error estimator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     EstimateError itself never panics.
//   • Defaults reproduce the knots-only estimate.

package lagrange

// DefaultProbeGrid is the number of extra probe points used by default (none).
const DefaultProbeGrid = 0

// config aggregates estimator knobs. Passed by value.
type config struct {
	probeGrid int // ≥ 0; extra evenly spaced probes over [min x, max x]
}

// Option customizes EstimateError.
type Option func(*config)

// WithProbeGrid makes EstimateError also probe the derivative bound at k
// evenly spaced points spanning [min x, max x] (endpoints included when
// k ≥ 2). This changes results relative to the knots-only default and is
// therefore opt-in. k == 0 restores the default.
// Panics if k < 0.
func WithProbeGrid(k int) Option {
	if k < 0 {
		panic("lagrange: WithProbeGrid(k<0)")
	}

	return func(c *config) { c.probeGrid = k }
}

func newConfig(opts ...Option) config {
	cfg := config{probeGrid: DefaultProbeGrid}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
