package matrix_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/matrix"
)

// ExampleBuildGraph imports a small chain and lists its edges.
func ExampleBuildGraph() {
	m, _ := matrix.FromRows([][]float64{
		{0, 0.5, 0.5},
		{1, 0, 0},
		{0, 0, 1},
	})
	g, _ := matrix.BuildGraph(m, matrix.WithStochasticCheck(0))
	for _, e := range g.Edges() {
		fmt.Printf("%d→%d %.1f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// 0→1 0.5
	// 0→2 0.5
	// 1→0 1.0
	// 2→2 1.0
}

// ExampleTransitionMatrix row-normalizes raw weights.
func ExampleTransitionMatrix() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 0, 3)

	p, ids, _ := matrix.TransitionMatrix(g)
	for i, id := range ids {
		fmt.Printf("%d: %.2f\n", id, mat.Row(nil, i, p))
	}

	// Output:
	// 0: [0.75 0.25]
	// 1: [0.00 1.00]
}
