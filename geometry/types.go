// SPDX-License-Identifier: MIT
// Package geometry: Engine, options and sentinel errors.

package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvwalk/core"
)

// Sentinel errors for geometry operations.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to NewEngine.
	ErrGraphNil = errors.New("geometry: graph is nil")

	// ErrBadRadius indicates a non-positive or non-finite node radius.
	ErrBadRadius = errors.New("geometry: radius must be > 0")

	// ErrBadBounds indicates non-positive window bounds.
	ErrBadBounds = errors.New("geometry: bounds must be > 0")
)

// Defaults for the node radius and window bounds.
const (
	DefaultRadius = 15.0
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Child placement policy: the first candidate is parent+(50,50); every
// collision grows the offset by childOffsetStep·k for the k-th collision.
const (
	childOffsetStart = 50.0
	childOffsetStep  = 20.0
)

// NodePair is an unordered pair of overlapping nodes, A before B in
// insertion order.
type NodePair struct {
	A, B core.NodeID
}

// EdgePair is an unordered pair of crossing edges, A before B in edge
// insertion order.
type EdgePair struct {
	A, B core.Edge
}

// Option configures an Engine.
type Option func(*Engine)

// WithRadius sets the node visual radius r.
func WithRadius(r float64) Option {
	return func(e *Engine) { e.radius = r }
}

// WithBounds sets the window size used by containment helpers.
func WithBounds(width, height float64) Option {
	return func(e *Engine) { e.width, e.height = width, height }
}

// Engine runs geometry queries against a shared Graph. It holds a reference
// to the Graph and mutates positions in place; it never copies it.
type Engine struct {
	g      *core.Graph
	radius float64
	width  float64
	height float64
}

// NewEngine binds an Engine to g.
//
// Errors: ErrGraphNil, ErrBadRadius, ErrBadBounds.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	e := &Engine{g: g, radius: DefaultRadius, width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(e)
	}
	if !(e.radius > 0) || math.IsInf(e.radius, 1) {
		return nil, fmt.Errorf("NewEngine: r=%g: %w", e.radius, ErrBadRadius)
	}
	if !(e.width > 0) || !(e.height > 0) {
		return nil, fmt.Errorf("NewEngine: %gx%g: %w", e.width, e.height, ErrBadBounds)
	}

	return e, nil
}

// Graph returns the bound graph.
func (e *Engine) Graph() *core.Graph { return e.g }

// Radius returns the node radius r.
func (e *Engine) Radius() float64 { return e.radius }

// Bounds returns the window width and height.
func (e *Engine) Bounds() (width, height float64) { return e.width, e.height }
