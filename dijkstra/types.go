// SPDX-License-Identifier: MIT
// Package dijkstra: options, cost modes and sentinel errors.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvwalk/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates Dijkstra was called without the Source option.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrVertexNotFound indicates a source or target missing from the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxCost indicates a negative WithMaxCost bound.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// CostMode selects how an edge is priced.
type CostMode int

const (
	// CostSurprisal prices u→v at −ln(w/Σw(u,·)).
	CostSurprisal CostMode = iota

	// CostWeight prices u→v at its raw weight.
	CostWeight
)

// String implements fmt.Stringer.
func (m CostMode) String() string {
	switch m {
	case CostSurprisal:
		return "surprisal"
	case CostWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// Options configures one Dijkstra run.
type Options struct {
	Source     core.NodeID
	Cost       CostMode
	ReturnPath bool
	MaxCost    float64 // nodes costlier than this are not expanded

	hasSource bool
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// Source sets the starting node. Required.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
		o.hasSource = true
	}
}

// WithCost selects the edge pricing.
func WithCost(mode CostMode) Option {
	return func(o *Options) { o.Cost = mode }
}

// WithReturnPath makes Dijkstra return the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxCost stops expansion past max. Panics if max < 0.
func WithMaxCost(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) { o.MaxCost = max }
}

// DefaultOptions returns surprisal costs, no predecessor map and no cost cap.
func DefaultOptions() Options {
	return Options{Cost: CostSurprisal, MaxCost: math.Inf(1)}
}

// Probability converts a surprisal path cost back to a probability.
func Probability(cost float64) float64 { return math.Exp(-cost) }
