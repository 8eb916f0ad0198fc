// SPDX-License-Identifier: MIT
// File: controller.go
// Role: construction, pointer handling (select, drag) and node actions.

package editor

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/geometry"
)

// New binds a Controller to eng and its graph.
//
// Errors: ErrEngineNil.
func New(eng *geometry.Engine, opts ...Option) (*Controller, error) {
	if eng == nil {
		return nil, ErrEngineNil
	}
	c := &Controller{
		eng:         eng,
		g:           eng.Graph(),
		log:         zerolog.Nop(),
		labelRadius: DefaultLabelRadius,
		labelOffset: DefaultLabelOffset,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Press handles a primary-button press at p. Weight labels are tested
// first (they are smaller than nodes), then nodes; empty canvas clears the
// selection. Any open weight edit is abandoned.
func (c *Controller) Press(p core.Point) Hit {
	c.editing = false
	c.buffer = c.buffer[:0]

	if e, ok := c.eng.EdgeLabelAt(p, c.labelRadius, c.labelOffset); ok {
		c.editing = true
		c.editEdge = e
		c.buffer = fmt.Appendf(c.buffer, weightTextFormat, e.Weight)
		return HitLabel
	}
	if id, ok := c.eng.NodeAt(p); ok {
		pos, _ := c.g.Position(id)
		c.selected, c.hasSelected = id, true
		c.dragging = true
		c.grab = r2.Sub(pos, p)
		return HitNode
	}
	c.hasSelected = false
	c.dragging = false

	return HitNone
}

// Drag moves the dragged node so that it keeps its grab offset from p.
// It reports whether a node moved.
func (c *Controller) Drag(p core.Point) bool {
	if !c.dragging {
		return false
	}
	if err := c.g.SetPosition(c.selected, r2.Add(p, c.grab)); err != nil {
		c.dragging = false
		c.log.Warn().Err(err).Int("node", int(c.selected)).Msg("drag target vanished")
		return false
	}

	return true
}

// Release ends a drag. The selection is kept.
func (c *Controller) Release() { c.dragging = false }

// Selected returns the selected node, if any.
func (c *Controller) Selected() (core.NodeID, bool) {
	if c.hasSelected && !c.g.HasNode(c.selected) {
		c.hasSelected = false
	}

	return c.selected, c.hasSelected
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// AddChildToSelected places a new child of the selected node clear of all
// others and links it as core.Graph.AddChild does.
//
// Errors: ErrNoSelection, or the engine's placement error.
func (c *Controller) AddChildToSelected() (core.NodeID, error) {
	parent, ok := c.Selected()
	if !ok {
		c.log.Warn().Msg("add child: no node selected")
		return 0, fmt.Errorf("AddChildToSelected: %w", ErrNoSelection)
	}
	child, err := c.eng.AddChild(parent)
	if err != nil {
		c.log.Error().Err(err).Int("parent", int(parent)).Msg("add child failed")
		return 0, fmt.Errorf("AddChildToSelected: %w", err)
	}
	c.log.Info().Int("parent", int(parent)).Int("child", int(child)).Msg("child added")

	return child, nil
}

// NormalizeSelected gives the selected node's outgoing edges equal weights.
// A sink node is logged and left unchanged.
//
// Errors: ErrNoSelection, core.ErrNoOutgoingEdges.
func (c *Controller) NormalizeSelected() error {
	id, ok := c.Selected()
	if !ok {
		c.log.Warn().Msg("normalize: no node selected")
		return fmt.Errorf("NormalizeSelected: %w", ErrNoSelection)
	}
	if err := c.g.NormalizeWeights(id); err != nil {
		if errors.Is(err, core.ErrNoOutgoingEdges) {
			c.log.Warn().Int("node", int(id)).Msg("normalize: node has no outgoing edges")
		} else {
			c.log.Error().Err(err).Int("node", int(id)).Msg("normalize failed")
		}
		return fmt.Errorf("NormalizeSelected: %w", err)
	}
	c.log.Info().Int("node", int(id)).Int("out_degree", c.g.OutDegree(id)).Msg("weights normalized")

	return nil
}

// DeleteSelected removes the selected node and its incident edges.
//
// Errors: ErrNoSelection.
func (c *Controller) DeleteSelected() error {
	id, ok := c.Selected()
	if !ok {
		return fmt.Errorf("DeleteSelected: %w", ErrNoSelection)
	}
	if err := c.g.RemoveNode(id); err != nil {
		return fmt.Errorf("DeleteSelected: %w", err)
	}
	c.hasSelected, c.dragging = false, false
	if c.editing && c.editEdge.SharesEndpoint(core.Edge{From: id, To: id}) {
		c.editing = false
	}
	c.log.Info().Int("node", int(id)).Msg("node deleted")

	return nil
}

// Reorganize logs and returns the current node overlaps and edge crossings,
// then runs one separation pass.
func (c *Controller) Reorganize() Report {
	r := Report{
		NodeOverlaps: c.eng.NodeOverlaps(),
		EdgeCrosses:  c.eng.OverlappingEdgePairs(),
	}
	r.Moved = c.eng.SeparateOverlappingNodes()
	c.log.Info().
		Int("node_overlaps", len(r.NodeOverlaps)).
		Int("edge_crossings", len(r.EdgeCrosses)).
		Int("moved", r.Moved).
		Msg("reorganized")

	return r
}

// ResetLayout places every node on the circular layout of the engine's
// bounds, in insertion order.
func (c *Controller) ResetLayout() {
	w, h := c.eng.Bounds()
	ids := c.g.Nodes()
	for i, p := range geometry.CircularLayout(len(ids), w, h) {
		_ = c.g.SetPosition(ids[i], p)
	}
}
