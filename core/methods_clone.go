// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning, clearing and size snapshots.

package core

// Clone returns a deep copy: flags, positions, edges, insertion orders and
// the id counter. Mutating the clone never affects g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := NewGraph(WithDirected(g.directed), WithBidirectionalChildren(g.bidirectionalChildren))
	c.strict = g.strict
	c.nextID = g.nextID
	c.order = append([]NodeID(nil), g.order...)
	c.edgeOrder = append([]edgeKey(nil), g.edgeOrder...)
	for id, p := range g.positions {
		c.positions[id] = p
	}
	for k, w := range g.weights {
		c.weights[k] = w
	}
	for id, s := range g.out {
		c.out[id] = append([]NodeID(nil), s...)
	}
	for id, s := range g.in {
		c.in[id] = append([]NodeID(nil), s...)
	}

	return c
}

// Clear removes all nodes and edges, keeping flags. The id counter restarts at 0.
func (g *Graph) Clear() {
	g.nextID = 0
	g.order = nil
	g.edgeOrder = nil
	g.positions = make(map[NodeID]Point)
	g.weights = make(map[edgeKey]float64)
	g.out = make(map[NodeID][]NodeID)
	g.in = make(map[NodeID][]NodeID)
}

// Stats returns node/edge counts for status displays.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		Directed:  g.directed,
		NodeCount: len(g.order),
		EdgeCount: len(g.weights),
	}
	for _, id := range g.order {
		if len(g.out[id]) == 0 {
			s.Sinks++
		}
	}

	return s
}
