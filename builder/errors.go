// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// errors.go: sentinel errors for the builder package.
// Constructors wrap these with method context ("Cycle: n=2 < min=3: %w");
// branch on them with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an unusable generated weight.
var ErrConstructFailed = errors.New("builder: construction failed")
