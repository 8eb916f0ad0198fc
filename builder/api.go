// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// api.go: public entry points.
//
// Contract:
//   - BuildGraph creates g, resolves cfg and runs constructors in order.
//   - Apply runs constructors against an existing graph.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph. On error g may hold the
// nodes and edges added before the failure.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
