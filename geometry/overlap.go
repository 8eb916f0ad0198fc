// SPDX-License-Identifier: MIT
// File: overlap.go
// Role: Node-circle overlaps, the separation pass and edge-crossing reports.
// Determinism:
//   - Pairs are enumerated i<j over insertion order (nodes or edges).

package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvwalk/core"
)

// degenerateDirection breaks ties when two nodes share a position.
var degenerateDirection = r2.Unit(r2.Vec{X: 1, Y: 1})

// NodeOverlaps returns every unordered pair of nodes whose center distance
// is strictly less than 2r.
// Complexity: O(V²).
func (e *Engine) NodeOverlaps() []NodePair {
	ids := e.g.Nodes()
	limit := 2 * e.radius

	var out []NodePair
	for i := 0; i < len(ids); i++ {
		pi, _ := e.g.Position(ids[i])
		for j := i + 1; j < len(ids); j++ {
			pj, _ := e.g.Position(ids[j])
			if r2.Norm(r2.Sub(pj, pi)) < limit {
				out = append(out, NodePair{A: ids[i], B: ids[j]})
			}
		}
	}

	return out
}

// SeparateOverlappingNodes runs one relaxation pass: for each pair (i<j in
// insertion order) that overlaps at the moment it is visited, node j moves
// by exactly r along the unit vector from node i to node j. Coincident nodes
// use unit(1,1). The pass is not iterated to convergence; call it again to
// reduce remaining overlap.
//
// Returns the number of moves performed.
// Complexity: O(V²).
func (e *Engine) SeparateOverlappingNodes() int {
	ids := e.g.Nodes()
	limit := 2 * e.radius

	moved := 0
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pi, _ := e.g.Position(ids[i])
			pj, _ := e.g.Position(ids[j])
			d := r2.Sub(pj, pi)
			if r2.Norm(d) >= limit {
				continue
			}
			dir := degenerateDirection
			if d.X != 0 || d.Y != 0 {
				dir = r2.Unit(d)
			}
			_ = e.g.SetPosition(ids[j], r2.Add(pj, r2.Scale(e.radius, dir)))
			moved++
		}
	}

	return moved
}

// EdgesIntersect reports whether the segments of a and b cross. Edges that
// share an endpoint id never cross, whatever their geometry.
//
// Errors: core.ErrNodeNotFound if an endpoint has no position.
func (e *Engine) EdgesIntersect(a, b core.Edge) (bool, error) {
	if a.SharesEndpoint(b) {
		return false, nil
	}
	pa, qa, err := e.segment(a)
	if err != nil {
		return false, err
	}
	pb, qb, err := e.segment(b)
	if err != nil {
		return false, err
	}

	return SegmentsIntersect(pa, qa, pb, qb), nil
}

// OverlappingEdgePairs returns every unordered pair of distinct edges whose
// segments cross and which share no endpoint.
// Complexity: O(E²).
func (e *Engine) OverlappingEdgePairs() []EdgePair {
	edges := e.g.Edges()

	var out []EdgePair
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			// Endpoints always exist: core prunes edges with their nodes.
			if hit, _ := e.EdgesIntersect(edges[i], edges[j]); hit {
				out = append(out, EdgePair{A: edges[i], B: edges[j]})
			}
		}
	}

	return out
}

// segment resolves the endpoint positions of ed.
func (e *Engine) segment(ed core.Edge) (p, q core.Point, err error) {
	p, ok := e.g.Position(ed.From)
	if !ok {
		return p, q, fmt.Errorf("segment(%d→%d): node %d: %w", ed.From, ed.To, ed.From, core.ErrNodeNotFound)
	}
	q, ok = e.g.Position(ed.To)
	if !ok {
		return p, q, fmt.Errorf("segment(%d→%d): node %d: %w", ed.From, ed.To, ed.To, core.ErrNodeNotFound)
	}

	return p, q, nil
}
