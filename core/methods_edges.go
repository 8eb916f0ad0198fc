// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/SetWeight,
//       Edges/EdgeCount, plus the link/unlink helpers shared with node methods.
// Determinism:
//   - Edges() returns edges in insertion order; overwriting a weight keeps the slot.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates (or re-weights) the edge from→to.
//
// Steps:
//  1. Validate weight: finite and ≥ 0, else ErrBadWeight.
//  2. Endpoints: strict graphs return ErrInvalidReference for unknown ids;
//     lenient graphs create them at the origin.
//  3. Store from→to; undirected graphs also store to→from with the same weight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, weight float64) error {
	if !validWeight(weight) {
		return fmt.Errorf("AddEdge(%d→%d, w=%g): %w", from, to, weight, ErrBadWeight)
	}
	for _, id := range [2]NodeID{from, to} {
		if g.HasNode(id) {
			continue
		}
		if g.strict {
			return fmt.Errorf("AddEdge(%d→%d): node %d: %w", from, to, id, ErrInvalidReference)
		}
		g.AddNode(id, Point{})
	}

	g.link(from, to, weight)
	if !g.directed && from != to {
		g.link(to, from, weight)
	}

	return nil
}

// RemoveEdge deletes from→to (and its mirror in undirected graphs).
// Returns ErrEdgeNotFound if the edge is absent.
// Complexity: O(deg + E).
func (g *Graph) RemoveEdge(from, to NodeID) error {
	if !g.HasEdge(from, to) {
		return fmt.Errorf("RemoveEdge(%d→%d): %w", from, to, ErrEdgeNotFound)
	}
	g.unlink(from, to)
	if !g.directed {
		g.unlink(to, from)
	}

	return nil
}

// HasEdge reports whether from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	_, ok := g.weights[edgeKey{from, to}]

	return ok
}

// Weight returns the weight of from→to.
func (g *Graph) Weight(from, to NodeID) (float64, bool) {
	w, ok := g.weights[edgeKey{from, to}]

	return w, ok
}

// SetWeight overwrites the weight of an existing edge. In undirected graphs
// the mirror edge is updated too.
//
// Errors: ErrBadWeight, ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) SetWeight(from, to NodeID, w float64) error {
	if !validWeight(w) {
		return fmt.Errorf("SetWeight(%d→%d, w=%g): %w", from, to, w, ErrBadWeight)
	}
	k := edgeKey{from, to}
	if _, ok := g.weights[k]; !ok {
		return fmt.Errorf("SetWeight(%d→%d): %w", from, to, ErrEdgeNotFound)
	}
	g.weights[k] = w
	if mirror := (edgeKey{to, from}); !g.directed {
		if _, ok := g.weights[mirror]; ok {
			g.weights[mirror] = w
		}
	}

	return nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, k := range g.edgeOrder {
		out = append(out, Edge{From: k.from, To: k.to, Weight: g.weights[k]})
	}

	return out
}

// EdgeCount returns the number of stored directed edges (an undirected
// connection counts twice).
func (g *Graph) EdgeCount() int { return len(g.weights) }

// link stores from→to with weight w, keeping insertion slots on overwrite.
func (g *Graph) link(from, to NodeID, w float64) {
	k := edgeKey{from, to}
	if _, exists := g.weights[k]; !exists {
		g.edgeOrder = append(g.edgeOrder, k)
		g.out[from] = append(g.out[from], to)
		g.in[to] = append(g.in[to], from)
	}
	g.weights[k] = w
}

// unlink removes from→to from every catalog. Absent edges are ignored.
func (g *Graph) unlink(from, to NodeID) {
	k := edgeKey{from, to}
	if _, exists := g.weights[k]; !exists {
		return
	}
	delete(g.weights, k)
	g.out[from] = removeID(g.out[from], to)
	g.in[to] = removeID(g.in[to], from)
	for i, ek := range g.edgeOrder {
		if ek == k {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			break
		}
	}
}

// validWeight accepts finite, non-negative weights. Zero is allowed so that
// imported or hand-built graphs can carry zero-mass edges; the walker never
// picks them.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
