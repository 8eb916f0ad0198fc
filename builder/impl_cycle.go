// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_cycle.go: Cycle(n) and Wheel(n).
//
// Contract:
//   • Cycle: n ≥ 3; nodes on the circular layout; edges i→(i+1)%n in i order.
//   • Wheel: n ≥ 4; hub at the window center, then a Cycle(n-1) rim and
//     hub⇄rim spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Cycle returns a Constructor that builds an n-node ring C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		return addRing(g, cfg, methodCycle, addNodes(g, ring(cfg, n)))
	}
}

// Wheel returns a Constructor that builds W_n: a hub plus an (n-1)-ring.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		hub := addNodes(g, []core.Point{center(cfg)})[0]
		rim := addNodes(g, ring(cfg, n-1))
		if err := addRing(g, cfg, methodWheel, rim); err != nil {
			return err
		}

		return addSpokes(g, cfg, methodWheel, hub, rim)
	}
}

// addRing emits ids[i]→ids[(i+1)%n] in ascending i.
func addRing(g *core.Graph, cfg builderConfig, method string, ids []core.NodeID) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		if err := addEdge(g, cfg, method, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}
