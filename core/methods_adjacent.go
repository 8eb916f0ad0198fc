// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, SuccessorIDs, Predecessors, degrees, Roots).
// Determinism:
//   - Every neighborhood follows edge insertion order.

package core

import "iter"

// Successors returns a lazy sequence of the destinations of id's outgoing
// edges in insertion order. The sequence is finite and may be ranged over any
// number of times; each pass reads the current adjacency. Unknown ids yield
// an empty sequence.
//
// Complexity: O(out-degree) per pass.
func (g *Graph) Successors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, to := range g.out[id] {
			if !yield(to) {
				return
			}
		}
	}
}

// SuccessorIDs returns a copy of id's successors in insertion order.
func (g *Graph) SuccessorIDs(id NodeID) []NodeID {
	return append([]NodeID(nil), g.out[id]...)
}

// Predecessors returns a copy of the sources of id's incoming edges.
func (g *Graph) Predecessors(id NodeID) []NodeID {
	return append([]NodeID(nil), g.in[id]...)
}

// OutDegree returns the number of outgoing edges of id.
func (g *Graph) OutDegree(id NodeID) int { return len(g.out[id]) }

// InDegree returns the number of incoming edges of id.
func (g *Graph) InDegree(id NodeID) int { return len(g.in[id]) }

// OutEdges returns id's outgoing edges with weights, in insertion order.
func (g *Graph) OutEdges(id NodeID) []Edge {
	succ := g.out[id]
	out := make([]Edge, 0, len(succ))
	for _, to := range succ {
		out = append(out, Edge{From: id, To: to, Weight: g.weights[edgeKey{id, to}]})
	}

	return out
}

// Roots returns the nodes without incoming edges, in insertion order.
// Complexity: O(V).
func (g *Graph) Roots() []NodeID {
	var roots []NodeID
	for _, id := range g.order {
		if len(g.in[id]) == 0 {
			roots = append(roots, id)
		}
	}

	return roots
}
