// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, following outgoing edges in insertion order.
//
// Key features:
//   - DFS(g, start, opts...): pre-order and post-order, depths and parents.
//   - Tree(g, opts...): the indented pre-order listing from the first root.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts.
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count.
//   - Cancellation via context.Context.
//
// Every node is visited at most once, so cycles (including the child⇄parent
// pairs that AddChild creates) terminate.
//
// Complexity:
//
//   - Time:   O(V + E), plus hooks and filters.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrEmptyGraph             if Tree finds no node to start from.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, or over the whole graph
// with WithFullTraversal (start is then ignored).
func DFS(g *core.Graph, start core.NodeID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("DFS(%d): %w", start, ErrStartVertexNotFound)
	}

	nodes := g.Nodes()
	res := &DFSResult{
		PreOrder: make([]core.NodeID, 0, len(nodes)),
		Order:    make([]core.NodeID, 0, len(nodes)),
		Depth:    make(map[core.NodeID]int, len(nodes)),
		Parent:   make(map[core.NodeID]core.NodeID, len(nodes)),
		Visited:  make(map[core.NodeID]bool, len(nodes)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, v := range nodes {
			if res.Visited[v] {
				continue
			}
			if err := w.traverse(v, 0); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits id at depth and recurses into unvisited successors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	for _, e := range w.graph.OutEdges(id) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[e.To] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[e.To] = id
		if err := w.traverse(e.To, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
