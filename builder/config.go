// SPDX-License-Identifier: MIT
// Package: lvinterp/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil   (pure/deterministic unless seeded)
//   • noiseSigma  = 0.0   (noiseless)
//   • trendK      = 0.0

package builder

import (
	"math/rand" // RNG for noisy generators
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for noise; nil means "seed locally with DefaultNoiseSeed".
	rng *rand.Rand

	noiseSigma float64 // >=0
	trendK     float64 // any finite real
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultNoiseSigma = 0.0
	defaultTrend      = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		noiseSigma: defaultNoiseSigma,
		trendK:     defaultTrend,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
