// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// helpers.go: node allocation and weighted edge emission.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/geometry"
)

// addNodes inserts one node per position with ids g.NextID(), g.NextID()+1, …
// and returns the ids in order.
func addNodes(g *core.Graph, pos []core.Point) []core.NodeID {
	ids := make([]core.NodeID, len(pos))
	base := g.NextID()
	for i, p := range pos {
		ids[i] = base + core.NodeID(i)
		g.AddNode(ids[i], p)
	}

	return ids
}

// ring returns n circular-layout positions for the configured window.
func ring(cfg builderConfig, n int) []core.Point {
	return geometry.CircularLayout(n, cfg.width, cfg.height)
}

// center returns the window center.
func center(cfg builderConfig) core.Point {
	return core.Point{X: cfg.width / 2, Y: cfg.height / 2}
}

// addEdge draws a weight from cfg and inserts u→v, wrapping failures with method.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// addSpokes links hub and every leaf in both directions (one call suffices
// for undirected graphs, where core mirrors the edge).
func addSpokes(g *core.Graph, cfg builderConfig, method string, hub core.NodeID, leaves []core.NodeID) error {
	for _, leaf := range leaves {
		if err := addEdge(g, cfg, method, hub, leaf); err != nil {
			return err
		}
		if g.Directed() {
			if err := addEdge(g, cfg, method, leaf, hub); err != nil {
				return err
			}
		}
	}

	return nil
}
