// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_path.go: Path(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node i sits at x = W·(i+1)/(n+1) on the horizontal center line.
//   • Edges i→i+1 for i = 0..n-2; the last node is a sink in directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Path returns a Constructor that builds a simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		pos := make([]core.Point, n)
		step := cfg.width / float64(n+1)
		for i := range pos {
			pos[i] = core.Point{X: step * float64(i+1), Y: cfg.height / 2}
		}
		ids := addNodes(g, pos)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
