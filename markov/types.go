// SPDX-License-Identifier: MIT
// Package markov: options, result type and sentinel errors.

package markov

import (
	"errors"

	"github.com/katalvlaran/lvwalk/core"
)

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("markov: graph is nil")

	// ErrEmptyGraph indicates a graph without nodes.
	ErrEmptyGraph = errors.New("markov: graph has no nodes")

	// ErrNoConvergence indicates power iteration hit the iteration cap.
	ErrNoConvergence = errors.New("markov: power iteration did not converge")
)

// Defaults for Stationary.
const (
	DefaultTolerance = 1e-12
	DefaultMaxIter   = 100000
)

// Option configures Stationary.
type Option func(*options)

type options struct {
	tol     float64
	maxIter int
}

// WithTolerance sets the L1 change below which iteration stops. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("markov: WithTolerance(tol<=0)")
	}

	return func(o *options) { o.tol = tol }
}

// WithMaxIter caps the number of iterations. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("markov: WithMaxIter(n<1)")
	}

	return func(o *options) { o.maxIter = n }
}

// Distribution is a probability vector over IDs; Pi[i] belongs to IDs[i].
type Distribution struct {
	IDs        []core.NodeID
	Pi         []float64
	Iterations int
}

// Of returns the probability of id, or 0 when id is absent.
func (d Distribution) Of(id core.NodeID) float64 {
	for i, v := range d.IDs {
		if v == id {
			return d.Pi[i]
		}
	}

	return 0
}
