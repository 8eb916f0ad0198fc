// SPDX-License-Identifier: MIT
// File: bfs.go
// Role: BFS entry point and queue-driven traversal state.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from start.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound, wrapped
// OnVisit errors, ctx.Err().
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Reachable returns the nodes reachable from start over positive-weight
// edges, start included, in BFS order.
func Reachable(g *core.Graph, start core.NodeID) ([]core.NodeID, error) {
	res, err := BFS(g, start, WithPositiveWeights())
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

func (w *walker) enqueue(id core.NodeID, d int) {
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues each undiscovered successor that passes the filter and
// depth limit.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.OutEdges(item.id) {
		if !w.opts.FilterNeighbor(e) || w.res.Reached(e.To) {
			continue
		}
		w.res.Parent[e.To] = item.id
		w.enqueue(e.To, next)
	}
}
