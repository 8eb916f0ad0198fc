// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/lvwalk/core"
)

// Common node ids used across core tests.
const (
	N0 core.NodeID = 0
	N1 core.NodeID = 1
	N2 core.NodeID = 2
	N3 core.NodeID = 3
	N9 core.NodeID = 9
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	W0   = 0.0
	W1   = 1.0
	W2   = 2.0
	W3   = 3.0
	WNeg = -1.0
)

// Eps is the floating-point tolerance for weight sums.
const Eps = 1e-12

// pt is a short constructor for positions.
func pt(x, y float64) core.Point { return core.Point{X: x, Y: y} }

// newTriangle RETURNS a directed graph 0→1→2→0 with unit weights and
// nodes at (0,0), (100,0), (0,100).
func newTriangle() *core.Graph {
	g := core.NewGraph(core.WithStrict())
	g.AddNode(N0, pt(0, 0))
	g.AddNode(N1, pt(100, 0))
	g.AddNode(N2, pt(0, 100))
	_ = g.AddEdge(N0, N1, W1)
	_ = g.AddEdge(N1, N2, W1)
	_ = g.AddEdge(N2, N0, W1)

	return g
}
