// SPDX-License-Identifier: MIT
// Package: lvinterp/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig before
// samples are produced.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for noisy generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoise adds zero-mean Gaussian noise with standard deviation sigma to
// every generated value (knots are never perturbed).
// Panics if sigma < 0 or sigma is not finite.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithNoise(sigma<0)")
	}

	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithTrend adds k·x to every generated value. Any finite k is accepted.
func WithTrend(k float64) BuilderOption {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		panic("builder: WithTrend(k not finite)")
	}

	return func(c *builderConfig) { c.trendK = k }
}
