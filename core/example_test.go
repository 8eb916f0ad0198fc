package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a strict directed graph:
	g := core.NewGraph(core.WithStrict())
	g.AddNode(0, core.Point{X: 100, Y: 100})
	g.AddNode(1, core.Point{X: 200, Y: 100})
	g.AddNode(2, core.Point{X: 200, Y: 200})

	// 2) Add weighted edges:
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(1, 0, 1)

	// 3) Inspect successors lazily:
	for id := range g.Successors(0) {
		w, _ := g.Weight(0, id)
		fmt.Printf("0→%d w=%.2f\n", id, w)
	}

	// 4) Remove a node; its edges go with it:
	_ = g.RemoveNode(1)
	fmt.Println("edges left:", g.EdgeCount())

	// Output:
	// 0→1 w=3.00
	// 0→2 w=1.00
	// edges left: 1
}

// ExampleGraph_NormalizeWeights shows equal-share normalization.
func ExampleGraph_NormalizeWeights() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 5)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(0, 3, 2)

	_ = g.NormalizeWeights(0)
	for _, e := range g.OutEdges(0) {
		fmt.Printf("%d→%d %.4f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// 0→1 0.3333
	// 0→2 0.3333
	// 0→3 0.3333
}

// ExampleGraph_AddChild shows fresh id allocation with bidirectional links.
func ExampleGraph_AddChild() {
	g := core.NewGraph()
	g.AddNode(4, core.Point{X: 10, Y: 10})

	child, _ := g.AddChild(4, core.Point{X: 60, Y: 60})
	fmt.Println(child, g.HasEdge(4, child), g.HasEdge(child, 4))

	// Output:
	// 5 true true
}
