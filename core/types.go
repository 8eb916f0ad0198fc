// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Edge and Point types, the sentinel
// errors and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidReference   - edge endpoint missing from a strict graph.
//	ErrNodeNotFound       - requested node does not exist.
//	ErrEdgeNotFound       - requested edge does not exist.
//	ErrBadWeight          - weight is negative, NaN or ±Inf.
//	ErrNoOutgoingEdges    - node has no outgoing edges to normalize.
//	ErrInvalidWeightInput - text does not parse as a positive real.
package core

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidReference indicates an edge operation named a node absent from a strict graph.
	ErrInvalidReference = errors.New("core: edge references unknown node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrNoOutgoingEdges indicates a node has no outgoing edges (normalize is a no-op).
	ErrNoOutgoingEdges = errors.New("core: node has no outgoing edges")

	// ErrInvalidWeightInput indicates user-entered text is not a positive real number.
	ErrInvalidWeightInput = errors.New("core: invalid weight input")
)

// DefaultWeight is the weight used for child links and unit edges.
const DefaultWeight = 1.0

// NodeID identifies a node within one Graph.
type NodeID int

// Point is a planar node position.
type Point = r2.Vec

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight float64
}

// SharesEndpoint reports whether e and o have any endpoint id in common.
func (e Edge) SharesEndpoint(o Edge) bool {
	return e.From == o.From || e.From == o.To || e.To == o.From || e.To == o.To
}

// edgeKey addresses an edge in the weight catalog.
type edgeKey struct {
	from NodeID
	to   NodeID
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge stores only from→to (true) or also the
// mirror to→from (false). Graphs are directed by default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithStrict makes AddEdge reject unknown endpoints with ErrInvalidReference
// instead of creating them.
func WithStrict() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// WithBidirectionalChildren sets whether AddChild also links child→parent.
// Enabled by default.
func WithBidirectionalChildren(enabled bool) GraphOption {
	return func(g *Graph) { g.bidirectionalChildren = enabled }
}

// Graph is the in-memory weighted graph with node positions.
//
// order keeps node insertion order; out/in keep per-node neighbor insertion
// order; edgeOrder keeps edge insertion order. weights is the edge catalog.
// nextID is one past the largest id ever inserted and never decreases.
type Graph struct {
	// Configuration flags
	directed              bool
	strict                bool
	bidirectionalChildren bool

	// Storage
	nextID    NodeID
	order     []NodeID
	positions map[NodeID]Point
	edgeOrder []edgeKey
	weights   map[edgeKey]float64
	out       map[NodeID][]NodeID
	in        map[NodeID][]NodeID
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is directed, lenient, with bidirectional children.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:              true,
		bidirectionalChildren: true,
		positions:             make(map[NodeID]Point),
		weights:               make(map[edgeKey]float64),
		out:                   make(map[NodeID][]NodeID),
		in:                    make(map[NodeID][]NodeID),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether new edges are stored one-way only.
func (g *Graph) Directed() bool { return g.directed }

// Strict reports whether unknown edge endpoints are rejected.
func (g *Graph) Strict() bool { return g.strict }

// BidirectionalChildren reports whether AddChild links child→parent too.
func (g *Graph) BidirectionalChildren() bool { return g.bidirectionalChildren }

// GraphStats is a read-only snapshot of graph sizes for status displays.
type GraphStats struct {
	Directed  bool
	NodeCount int
	EdgeCount int
	Sinks     int // nodes with no outgoing edges
}
