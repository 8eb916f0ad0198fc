// SPDX-License-Identifier: MIT
// File: classes.go
// Role: closed (trapping) classes and transient nodes via Tarjan SCC.

package markov

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvwalk/core"
)

// ClosedClasses returns every strongly connected component of the
// positive-weight subgraph that no positive-weight edge leaves. Ids within a
// class are ascending; classes are ordered by their smallest id. Zero-weight
// edges carry no mass and are ignored, so a node whose weights are all zero
// is a closed class of one.
//
// Errors: ErrGraphNil.
//
// Complexity: O(V + E).
func ClosedClasses(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dg := simple.NewDirectedGraph()
	for _, id := range g.Nodes() {
		dg.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		// simple graphs reject self-loops; they never affect closure.
		if e.Weight > 0 && e.From != e.To {
			dg.SetEdge(dg.NewEdge(simple.Node(e.From), simple.Node(e.To)))
		}
	}

	var classes [][]core.NodeID
	for _, scc := range topo.TarjanSCC(dg) {
		member := make(map[core.NodeID]bool, len(scc))
		ids := make([]core.NodeID, 0, len(scc))
		for _, n := range scc {
			id := core.NodeID(n.ID())
			member[id] = true
			ids = append(ids, id)
		}
		if leaves(g, ids, member) {
			continue
		}
		slices.Sort(ids)
		classes = append(classes, ids)
	}
	slices.SortFunc(classes, func(a, b []core.NodeID) int { return cmp.Compare(a[0], b[0]) })

	return classes, nil
}

// Transient returns the nodes outside every closed class, ascending.
//
// Errors: ErrGraphNil.
func Transient(g *core.Graph) ([]core.NodeID, error) {
	classes, err := ClosedClasses(g)
	if err != nil {
		return nil, err
	}
	closed := make(map[core.NodeID]bool)
	for _, c := range classes {
		for _, id := range c {
			closed[id] = true
		}
	}
	var out []core.NodeID
	for _, id := range g.Nodes() {
		if !closed[id] {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return out, nil
}

// leaves reports whether some positive-weight edge exits the component.
func leaves(g *core.Graph, ids []core.NodeID, member map[core.NodeID]bool) bool {
	for _, id := range ids {
		for _, e := range g.OutEdges(id) {
			if e.Weight > 0 && !member[e.To] {
				return true
			}
		}
	}

	return false
}
