// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// options.go: functional options for the builder package.
// Option constructors validate and panic on meaningless inputs.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithBounds sets the placement window. Panics unless both sides are positive.
func WithBounds(width, height float64) BuilderOption {
	if !(width > 0) || !(height > 0) {
		panic("builder: WithBounds requires width>0 and height>0")
	}

	return func(c *builderConfig) {
		c.width = width
		c.height = height
	}
}
