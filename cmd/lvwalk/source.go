// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/config"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/geometry"
	"github.com/katalvlaran/lvwalk/matrix"
)

// buildGraph creates the graph described by cfg.Graph: the imported matrix,
// or a generated topology laid out inside the window.
func buildGraph(cfg *config.Config) (*core.Graph, error) {
	gc := cfg.Graph
	if gc.Topology == config.TopologyMatrix {
		m, err := matrix.FromRows(gc.Matrix)
		if err != nil {
			return nil, err
		}
		return matrix.BuildGraph(m,
			matrix.WithBounds(cfg.Window.Width, cfg.Window.Height),
			matrix.WithBidirectionalChildren(gc.BidirectionalChildren),
		)
	}

	con, err := constructor(gc.Topology, gc.Nodes, gc.Probability)
	if err != nil {
		return nil, err
	}
	gopts := []core.GraphOption{
		core.WithDirected(gc.Directed),
		core.WithBidirectionalChildren(gc.BidirectionalChildren),
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(cfg.Walk.Seed),
		builder.WithBounds(cfg.Window.Width, cfg.Window.Height),
	}

	return builder.BuildGraph(gopts, bopts, con)
}

func constructor(topology string, n int, p float64) (builder.Constructor, error) {
	switch topology {
	case config.TopologyCycle:
		return builder.Cycle(n), nil
	case config.TopologyPath:
		return builder.Path(n), nil
	case config.TopologyStar:
		return builder.Star(n), nil
	case config.TopologyWheel:
		return builder.Wheel(n), nil
	case config.TopologyComplete:
		return builder.Complete(n), nil
	case config.TopologyRandom:
		return builder.RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("topology %q: %w", topology, config.ErrInvalidConfig)
}

// newEngine wraps g with the configured node radius and window.
func newEngine(cfg *config.Config, g *core.Graph) (*geometry.Engine, error) {
	return geometry.NewEngine(g,
		geometry.WithRadius(cfg.Window.Radius),
		geometry.WithBounds(cfg.Window.Width, cfg.Window.Height))
}
