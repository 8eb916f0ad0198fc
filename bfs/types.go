// SPDX-License-Identifier: MIT
// Package bfs: options, result type and sentinel errors.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS. An invalid Option (negative depth) is recorded and
// surfaced as ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks for one BFS run.
type BFSOptions struct {
	Ctx context.Context

	// OnEnqueue runs when a node is first discovered.
	OnEnqueue func(id core.NodeID, depth int)

	// OnDequeue runs immediately before a node is visited.
	OnDequeue func(id core.NodeID, depth int)

	// OnVisit runs on visit; an error aborts the search.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor skips an edge when it returns false.
	FilterNeighbor func(e core.Edge) bool

	err error
}

// DefaultOptions returns background context, no-op hooks, no depth limit
// and no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.NodeID, int) {},
		OnDequeue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
		FilterNeighbor: func(core.Edge) bool { return true },
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a discovery hook.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a pre-visit hook.
func WithOnDequeue(fn func(id core.NodeID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a visit hook; returning an error stops the search.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(e core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithPositiveWeights skips zero-weight edges, which a walker never takes.
func WithPositiveWeights() Option {
	return WithFilterNeighbor(func(e core.Edge) bool { return e.Weight > 0 })
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	Start  core.NodeID
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Reached reports whether id was discovered.
func (r *BFSResult) Reached(id core.NodeID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs a fewest-hops path from Start to dest.
func (r *BFSResult) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNoPath)
	}
	path := []core.NodeID{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Unreached returns the nodes of g the search did not discover, in insertion
// order.
func (r *BFSResult) Unreached(g *core.Graph) []core.NodeID {
	var out []core.NodeID
	for _, id := range g.Nodes() {
		if !r.Reached(id) {
			out = append(out, id)
		}
	}

	return out
}
