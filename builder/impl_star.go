// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_star.go: Star(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub first at the window center, then n-1 leaves on the circular layout.
//   • Spokes hub→leaf in leaf order; directed graphs also get leaf→hub.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		hub := addNodes(g, []core.Point{center(cfg)})[0]
		leaves := addNodes(g, ring(cfg, n-1))

		return addSpokes(g, cfg, methodStar, hub, leaves)
	}
}
