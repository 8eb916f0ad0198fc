// Package core provides the in-memory weighted directed Graph used by every
// other lvwalk package: a node set with planar positions plus a set of
// weighted edges keyed by (from, to).
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected). Undirected graphs store
//     the mirror edge to→from with the same weight.
//   - Strict vs. lenient endpoints (WithStrict). Strict graphs reject edges
//     naming unknown nodes with ErrInvalidReference; lenient graphs create the
//     missing endpoints at the origin.
//   - Bidirectional children (WithBidirectionalChildren). AddChild links
//     parent→child and, by default, child→parent.
//   - Deterministic iteration: Nodes(), Edges(), Successors() all follow
//     insertion order, so hit-testing and overlap reports are stable.
//
// Positions are gonum r2.Vec values. Geometry (overlaps, placement, hit
// testing) lives in package geometry; the Graph only stores coordinates.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id NodeID, pos Point)                 // O(1)
//	RemoveNode(id NodeID) error                   // O(deg(v) + E) edge pruning
//	AddChild(parent NodeID, pos Point) (NodeID, error)
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID, weight float64) error // O(1)
//	RemoveEdge(from, to NodeID) error              // O(deg + E)
//	SetWeight(from, to NodeID, w float64) error    // O(1)
//	NormalizeWeights(id NodeID) error              // O(deg(v))
//
//	// Query
//	Successors(id NodeID) iter.Seq[NodeID]         // lazy, restartable
//	Position(id NodeID) (Point, bool)
//	Nodes() []NodeID / Edges() []Edge              // insertion order
//
// Errors:
//
//	ErrInvalidReference   – edge names a node absent from a strict graph
//	ErrNodeNotFound       – missing node
//	ErrEdgeNotFound       – missing edge
//	ErrBadWeight          – negative, NaN or infinite weight
//	ErrNoOutgoingEdges    – NormalizeWeights on a sink node
//	ErrInvalidWeightInput – ParseWeight text is not a positive real
//
// A Graph is not safe for concurrent use: it is mutated in place by a single
// control thread (frame loop, editor, walker).
package core
