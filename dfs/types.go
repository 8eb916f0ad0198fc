// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvwalk/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Tree.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrEmptyGraph indicates Tree was asked to pick a root in a graph without nodes.
	ErrEmptyGraph = errors.New("dfs: graph has no nodes")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order)
	// with its depth. Returning an error aborts traversal.
	OnVisit func(id core.NodeID, depth int) error

	// OnExit, if non-nil, is invoked after a node's descendants are explored.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, limits recursion. 0 visits only the start.
	MaxDepth int

	// FilterNeighbor, if non-nil, decides whether edge from→to is followed.
	FilterNeighbor func(e core.Edge) bool

	// FullTraversal restarts from every unvisited node in insertion order.
	FullTraversal bool

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns options with a background context, no hooks, no
// depth limit and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips every edge for which fn returns false.
func WithFilterNeighbor(fn func(e core.Edge) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithPositiveWeights follows only edges that carry walk mass (weight > 0).
func WithPositiveWeights() Option {
	return WithFilterNeighbor(func(e core.Edge) bool { return e.Weight > 0 })
}

// WithFullTraversal covers every component, restarting from each unvisited
// node in insertion order.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// PreOrder records nodes in discovery order.
	PreOrder []core.NodeID

	// Order records nodes in finish order (post-order).
	Order []core.NodeID

	// Depth maps each node to its tree depth from its traversal root.
	Depth map[core.NodeID]int

	// Parent maps each discovered non-root node to its tree parent.
	Parent map[core.NodeID]core.NodeID

	// Visited flags nodes reached during traversal.
	Visited map[core.NodeID]bool

	// SkippedNeighbors mirrors DFSOptions.SkippedNeighbors.
	SkippedNeighbors int
}
