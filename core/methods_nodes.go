// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle & position queries: AddNode/RemoveNode/AddChild,
//       Position/SetPosition, Nodes/NodeCount/HasNode/NextID.
// Determinism:
//   - Nodes() returns ids in insertion order (overwrites keep the original slot).

package core

import "fmt"

// AddNode inserts id at pos. If id already exists only its position is
// overwritten; its slot in Nodes() order is kept.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID, pos Point) {
	if _, exists := g.positions[id]; !exists {
		g.order = append(g.order, id)
	}
	g.positions[id] = pos
	if id >= g.nextID {
		g.nextID = id + 1
	}
}

// HasNode reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.positions[id]

	return ok
}

// RemoveNode deletes id, its position and every incident edge.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(v)·deg + V + E).
func (g *Graph) RemoveNode(id NodeID) error {
	if !g.HasNode(id) {
		return fmt.Errorf("RemoveNode(%d): %w", id, ErrNodeNotFound)
	}

	// Prune incident edges first so no edge ever names a missing node.
	for _, to := range append([]NodeID(nil), g.out[id]...) {
		g.unlink(id, to)
	}
	for _, from := range append([]NodeID(nil), g.in[id]...) {
		g.unlink(from, id)
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.positions, id)
	g.order = removeID(g.order, id)

	return nil
}

// AddChild allocates a fresh id (NextID), places it at pos and links
// parent→child with DefaultWeight. When bidirectional children are enabled,
// or the graph is undirected, it also links child→parent with DefaultWeight.
//
// Placement is the caller's concern; geometry.Engine.AddChild picks a
// non-overlapping position before delegating here.
//
// Errors: ErrNodeNotFound if parent is absent.
// Complexity: O(1) amortized.
func (g *Graph) AddChild(parent NodeID, pos Point) (NodeID, error) {
	if !g.HasNode(parent) {
		return 0, fmt.Errorf("AddChild(%d): %w", parent, ErrNodeNotFound)
	}
	child := g.nextID
	g.AddNode(child, pos)
	g.link(parent, child, DefaultWeight)
	if g.bidirectionalChildren || !g.directed {
		g.link(child, parent, DefaultWeight)
	}

	return child, nil
}

// NextID returns the id AddChild would allocate: one past the largest id
// ever inserted. It never decreases, even after RemoveNode.
func (g *Graph) NextID() NodeID { return g.nextID }

// Position returns the coordinates of id.
func (g *Graph) Position(id NodeID) (Point, bool) {
	p, ok := g.positions[id]

	return p, ok
}

// SetPosition moves an existing node.
// Returns ErrNodeNotFound if id is absent.
func (g *Graph) SetPosition(id NodeID, p Point) error {
	if !g.HasNode(id) {
		return fmt.Errorf("SetPosition(%d): %w", id, ErrNodeNotFound)
	}
	g.positions[id] = p

	return nil
}

// Nodes returns all node ids in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	return append([]NodeID(nil), g.order...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// removeID deletes the first occurrence of id from s, preserving order.
func removeID(s []NodeID, id NodeID) []NodeID {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
