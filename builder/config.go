// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng      = nil             (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn (constant 1)
//   • window   = 800×600         (geometry defaults)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvwalk/geometry"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Placement window.
	width, height float64
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		width:    geometry.DefaultWidth,
		height:   geometry.DefaultHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
