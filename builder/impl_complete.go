// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_complete.go: Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Directed: every ordered pair (i,j), i≠j, i-major order.
//   • Undirected: every unordered pair i<j (core mirrors it).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Complete returns a Constructor that builds K_n without self-loops.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, ring(cfg, n))
		directed := g.Directed()

		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
