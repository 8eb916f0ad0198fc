// SPDX-License-Identifier: MIT
// File: dijkstra.go
// Role: Dijkstra runner, most-likely path helper and the min-heap.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvwalk/core"
)

// Dijkstra computes the cheapest cost from Options.Source to every node of g.
//
// Returns:
//
//   - dist: node → cost; +Inf for unreachable nodes.
//   - prev: with WithReturnPath, node → predecessor on its cheapest path for
//     every reached node except the source; nil otherwise.
//
// Errors: ErrNoSource, ErrNilGraph, ErrVertexNotFound.
func Dijkstra(g *core.Graph, opts ...Option) (map[core.NodeID]float64, map[core.NodeID]core.NodeID, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("Dijkstra: source %d: %w", cfg.Source, ErrVertexNotFound)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]float64, n),
		prev:    make(map[core.NodeID]core.NodeID, n),
		done:    make(map[core.NodeID]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// MostLikelyPath returns the path from→to a walker is most likely to follow
// and the probability of following exactly that path.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrNoPath.
func MostLikelyPath(g *core.Graph, from, to core.NodeID) ([]core.NodeID, float64, error) {
	if g != nil && !g.HasNode(to) {
		return nil, 0, fmt.Errorf("MostLikelyPath: target %d: %w", to, ErrVertexNotFound)
	}
	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return nil, 0, fmt.Errorf("MostLikelyPath: %w", err)
	}
	if math.IsInf(dist[to], 1) {
		return nil, 0, fmt.Errorf("MostLikelyPath(%d→%d): %w", from, to, ErrNoPath)
	}

	return PathTo(prev, from, to), Probability(dist[to]), nil
}

// PathTo rebuilds src→dst from a predecessor map returned by Dijkstra. The
// caller must ensure dst was reached.
func PathTo(prev map[core.NodeID]core.NodeID, src, dst core.NodeID) []core.NodeID {
	path := []core.NodeID{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.NodeID]float64
	prev    map[core.NodeID]core.NodeID
	done    map[core.NodeID]bool
	pq      nodePQ
}

func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the cheapest node until the heap is empty or the cheapest
// entry exceeds MaxCost.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.done[item.id] {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}
		r.done[item.id] = true
		r.relax(item.id)
	}
}

// relax improves the cost of each successor of u.
func (r *runner) relax(u core.NodeID) {
	total := r.g.OutWeightSum(u)
	for _, e := range r.g.OutEdges(u) {
		if e.Weight <= 0 {
			continue
		}
		cost := e.Weight
		if r.options.Cost == CostSurprisal {
			cost = -math.Log(e.Weight / total)
		}
		next := r.dist[u] + cost
		if next > r.options.MaxCost || next >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = next
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: next})
	}
}

type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for stable ties.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)   { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
