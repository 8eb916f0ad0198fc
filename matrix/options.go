// SPDX-License-Identifier: MIT
// Package matrix: functional options for BuildGraph.
// WithX constructors panic on nonsensical values (programmer error); the
// defaults below are the single source of truth.

package matrix

import "github.com/katalvlaran/lvwalk/geometry"

// Defaults.
const (
	// DefaultEpsilon is the row-sum tolerance used by WithStochasticCheck(0).
	DefaultEpsilon = 1e-9

	// DefaultWidth and DefaultHeight bound the circular layout of imported nodes.
	DefaultWidth  = geometry.DefaultWidth
	DefaultHeight = geometry.DefaultHeight
)

// Option configures BuildGraph.
type Option func(*options)

type options struct {
	checkStochastic bool
	eps             float64
	width, height   float64
	bidirectional   bool
}

// WithStochasticCheck makes BuildGraph reject rows whose sum differs from 1
// by more than eps. eps == 0 selects DefaultEpsilon. Panics if eps < 0.
func WithStochasticCheck(eps float64) Option {
	if eps < 0 {
		panic("matrix: WithStochasticCheck(eps<0)")
	}
	if eps == 0 {
		eps = DefaultEpsilon
	}

	return func(o *options) {
		o.checkStochastic = true
		o.eps = eps
	}
}

// WithBounds sets the window used for the circular layout. Panics unless
// both sides are positive.
func WithBounds(width, height float64) Option {
	if !(width > 0) || !(height > 0) {
		panic("matrix: WithBounds requires width>0 and height>0")
	}

	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithBidirectionalChildren sets core.WithBidirectionalChildren on the
// imported graph. Enabled by default.
func WithBidirectionalChildren(enabled bool) Option {
	return func(o *options) { o.bidirectional = enabled }
}

func gatherOptions(opts []Option) options {
	o := options{eps: DefaultEpsilon, width: DefaultWidth, height: DefaultHeight, bidirectional: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
