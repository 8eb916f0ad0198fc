// SPDX-License-Identifier: MIT
// File: export.go
// Role: TransitionMatrix (graph → row-stochastic matrix).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvwalk/core"
)

// TransitionMatrix returns the row-stochastic transition matrix of g and the
// node order of its rows and columns (g.Nodes() order).
//
// Row i holds w(i→j)/Σw for each outgoing edge of node i. A node with no
// outgoing edges, or whose outgoing weights are all zero, gets P[i][i] = 1:
// the walker stays put there. An empty graph yields an empty matrix.
//
// Errors: ErrGraphNil.
//
// Complexity: O(V² + E).
func TransitionMatrix(g *core.Graph) (*mat.Dense, []core.NodeID, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("TransitionMatrix: %w", ErrGraphNil)
	}
	ids := g.Nodes()
	n := len(ids)
	if n == 0 {
		return &mat.Dense{}, ids, nil
	}
	index := make(map[core.NodeID]int, n)
	for i, id := range ids {
		index[id] = i
	}

	p := mat.NewDense(n, n, nil)
	var total float64
	for i, id := range ids {
		out := g.OutEdges(id)
		total = 0
		for _, e := range out {
			total += e.Weight
		}
		if total <= 0 {
			p.Set(i, i, 1)
			continue
		}
		for _, e := range out {
			p.Set(i, index[e.To], e.Weight/total)
		}
	}

	return p, ids, nil
}
