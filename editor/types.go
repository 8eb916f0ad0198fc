// SPDX-License-Identifier: MIT
// Package editor: Controller state, options and sentinel errors.

package editor

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/geometry"
	"github.com/katalvlaran/lvwalk/walker"
)

var (
	// ErrEngineNil indicates that a nil *geometry.Engine was passed to New.
	ErrEngineNil = errors.New("editor: engine is nil")

	// ErrNoSelection indicates an action that needs a selected node ran without one.
	ErrNoSelection = errors.New("editor: no node selected")

	// ErrNotEditing indicates a buffer operation outside weight editing.
	ErrNotEditing = errors.New("editor: not editing a weight")

	// ErrNoWalker indicates a walk action on a controller without a walker.
	ErrNoWalker = errors.New("editor: no walker attached")
)

// Label hit-testing defaults.
const (
	DefaultLabelRadius = 10.0
	DefaultLabelOffset = 20.0
)

// weightTextFormat renders a weight into the edit buffer.
const weightTextFormat = "%.2f"

// Hit reports what a Press landed on.
type Hit int

const (
	// HitNone is empty canvas; the selection is cleared.
	HitNone Hit = iota
	// HitNode selected a node and started a drag.
	HitNode
	// HitLabel opened an edge weight for editing.
	HitLabel
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for recoverable errors and actions.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithWalker attaches a walker driven by StartWalk, NextStep and Tick.
func WithWalker(w *walker.Walker) Option {
	return func(c *Controller) { c.walk = w }
}

// WithLabel sets the weight-label hit radius and its perpendicular offset
// from the edge midpoint.
func WithLabel(radius, offset float64) Option {
	return func(c *Controller) {
		c.labelRadius = radius
		c.labelOffset = offset
	}
}

// Controller holds selection, drag and edit state over a shared graph.
// Not safe for concurrent use.
type Controller struct {
	eng  *geometry.Engine
	g    *core.Graph
	walk *walker.Walker
	log  zerolog.Logger

	labelRadius float64
	labelOffset float64

	selected    core.NodeID
	hasSelected bool
	dragging    bool
	grab        core.Point

	editing  bool
	editEdge core.Edge
	buffer   []byte
}

// Report summarizes a Reorganize call.
type Report struct {
	NodeOverlaps []geometry.NodePair
	EdgeCrosses  []geometry.EdgePair
	Moved        int
}
