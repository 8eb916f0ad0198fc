// SPDX-License-Identifier: MIT
// Package walker: Walker state, options and sentinel errors.

package walker

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvwalk/core"
)

// Sentinel errors for walker operations.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to New.
	ErrGraphNil = errors.New("walker: graph is nil")

	// ErrEmptyGraph indicates the graph has no node to stand on.
	ErrEmptyGraph = errors.New("walker: graph has no nodes")

	// ErrDegenerateWalk indicates every outgoing weight of the current node is zero.
	ErrDegenerateWalk = errors.New("walker: all outgoing weights are zero")

	// ErrInvalidState indicates the current node is no longer in the graph.
	ErrInvalidState = errors.New("walker: current node not in graph")
)

// DefaultDelay is the timer-driven inter-step delay.
const DefaultDelay = 500 * time.Millisecond

// defaultSeed is used when neither WithSeed nor WithRand is given.
const defaultSeed int64 = 1

// Option configures a Walker.
type Option func(*Walker)

// WithSeed creates a deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(w *Walker) { w.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walker: WithRand(nil)")
	}

	return func(w *Walker) { w.rng = r }
}

// WithDelay sets the timer-driven inter-step delay.
func WithDelay(d time.Duration) Option {
	return func(w *Walker) { w.delay = d }
}

// WithStart pins the initial node instead of drawing one at random.
// An id absent from the graph falls back to a random draw.
func WithStart(id core.NodeID) Option {
	return func(w *Walker) {
		w.start = id
		w.hasStart = true
	}
}

// WithClock sets the time source used by New and Reset for the step timer.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("walker: WithClock(nil)")
	}

	return func(w *Walker) { w.now = now }
}

// Walker is a weighted random walker bound to a shared Graph. It reads the
// Graph on every step and never copies it. Not safe for concurrent use.
type Walker struct {
	g     *core.Graph
	rng   *rand.Rand
	delay time.Duration
	now   func() time.Time

	start    core.NodeID
	hasStart bool

	current  core.NodeID
	lastStep time.Time
	steps    int
	visits   map[core.NodeID]int

	// scratch buffer for cumulative weights; reused across steps.
	cum []float64
}
