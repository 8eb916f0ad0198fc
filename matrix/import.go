// SPDX-License-Identifier: MIT
// File: import.go
// Role: FromRows and BuildGraph (matrix → graph).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/geometry"
)

// FromRows copies row literals into a new *mat.Dense.
//
// Errors: ErrBadShape when rows is empty, a row is empty, or rows are ragged.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %d rows: %w", len(rows), ErrBadShape)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data), nil
}

// BuildGraph imports an n×n matrix as a directed graph on nodes 0..n-1.
//
// Every entry m(i,j) > 0 becomes edge i→j with weight m(i,j); zero entries
// produce no edge and a diagonal entry produces a self-loop. Node i is placed
// at geometry.CircularLayout(n, W, H)[i]. A 0×0 matrix yields an empty graph.
//
// The whole matrix is validated before any node is created, so on error no
// partial graph is returned.
//
// A nil interface and a typed nil *mat.Dense both yield ErrNilMatrix.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegativeEntry,
// ErrNotStochastic (only with WithStochasticCheck).
//
// Complexity: O(n²).
func BuildGraph(m mat.Matrix, opts ...Option) (*core.Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts)

	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("BuildGraph: %dx%d: %w", r, c, ErrNonSquare)
	}
	if err := validate(m, r, o); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithDirected(true), core.WithStrict(), core.WithBidirectionalChildren(o.bidirectional))
	for i, p := range geometry.CircularLayout(r, o.width, o.height) {
		g.AddNode(core.NodeID(i), p)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			if v = m.At(i, j); v > 0 {
				if err := g.AddEdge(core.NodeID(i), core.NodeID(j), v); err != nil {
					return nil, fmt.Errorf("BuildGraph: edge %d→%d: %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}

// validate checks every entry for finiteness and sign, then row sums when
// the stochastic check is enabled.
func validate(m mat.Matrix, n int, o options) error {
	var i, j int
	var v, sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("BuildGraph: entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
			if v < 0 {
				return fmt.Errorf("BuildGraph: entry (%d,%d)=%v: %w", i, j, v, ErrNegativeEntry)
			}
			sum += v
		}
		if o.checkStochastic && math.Abs(sum-1) > o.eps {
			return fmt.Errorf("BuildGraph: row %d sums to %v: %w", i, sum, ErrNotStochastic)
		}
	}

	return nil
}
