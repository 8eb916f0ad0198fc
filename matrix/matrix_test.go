// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/matrix"
)

const eps = 1e-12

// tenState is the ten-state chain shipped as the CLI's default matrix:
// three leaves around a hub (3), a bridge (4) and a second hub (5) with four leaves.
var tenState = [][]float64{
	{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
	{0.25, 0.25, 0.25, 0, 0.25, 0, 0, 0, 0, 0},
	{0, 0, 0, 0.5, 0, 0.5, 0, 0, 0, 0},
	{0, 0, 0, 0, 0.2, 0, 0.2, 0.2, 0.2, 0.2},
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
}

// cycleRows returns the n-cycle permutation matrix i → (i+1) mod n.
func cycleRows(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][(i+1)%n] = 1
	}

	return rows
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, m.At(1, 0))

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestBuildGraph_Cycle VERIFIES successors(i) == [(i+1) mod n] for a cycle matrix.
func TestBuildGraph_Cycle(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		m, err := matrix.FromRows(cycleRows(n))
		require.NoError(t, err)
		g, err := matrix.BuildGraph(m, matrix.WithStochasticCheck(0))
		require.NoError(t, err)

		require.Equal(t, n, g.NodeCount())
		require.Equal(t, n, g.EdgeCount())
		for i := 0; i < n; i++ {
			assert.Equal(t, []core.NodeID{core.NodeID((i + 1) % n)}, g.SuccessorIDs(core.NodeID(i)))
		}
	}
}

func TestBuildGraph_TenState(t *testing.T) {
	m, err := matrix.FromRows(tenState)
	require.NoError(t, err)
	g, err := matrix.BuildGraph(m, matrix.WithStochasticCheck(1e-9))
	require.NoError(t, err)

	assert.Equal(t, 10, g.NodeCount())
	assert.Equal(t, 18, g.EdgeCount())
	assert.Equal(t, []core.NodeID{0, 1, 2, 4}, g.SuccessorIDs(3))
	w, ok := g.Weight(5, 9)
	require.True(t, ok)
	assert.InDelta(t, 0.2, w, eps)
	assert.False(t, g.HasEdge(0, 1), "zero entries produce no edge")
}

func TestBuildGraph_CircularPlacement(t *testing.T) {
	m, err := matrix.FromRows(cycleRows(4))
	require.NoError(t, err)

	g, err := matrix.BuildGraph(m)
	require.NoError(t, err)
	p, ok := g.Position(0)
	require.True(t, ok)
	// 800×600 default window: center (400,300), radius 600/2.5 = 240.
	assert.InDelta(t, 640, p.X, 1e-9)
	assert.InDelta(t, 300, p.Y, 1e-9)
	p, _ = g.Position(1)
	assert.InDelta(t, 400, p.X, 1e-9)
	assert.InDelta(t, 540, p.Y, 1e-9)

	g, err = matrix.BuildGraph(m, matrix.WithBounds(100, 100))
	require.NoError(t, err)
	p, _ = g.Position(2)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 50, p.Y, 1e-9)
}

func TestBuildGraph_Unnormalized(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 3, 1}, {2, 2, 0}, {0, 0, 0}})
	require.NoError(t, err)

	g, err := matrix.BuildGraph(m)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(1, 1), "diagonal entry is a self-loop")
	assert.Equal(t, 0, g.OutDegree(2))

	_, err = matrix.BuildGraph(m, matrix.WithStochasticCheck(0))
	assert.ErrorIs(t, err, matrix.ErrNotStochastic)
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := matrix.BuildGraph(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var dense *mat.Dense
	_, err = matrix.BuildGraph(dense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.BuildGraph(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.BuildGraph(mat.NewDense(2, 2, []float64{0, 1, -0.5, 0}))
	assert.ErrorIs(t, err, matrix.ErrNegativeEntry)

	_, err = matrix.BuildGraph(mat.NewDense(2, 2, []float64{0, math.NaN(), 1, 0}))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.BuildGraph(mat.NewDense(2, 2, []float64{0, math.Inf(1), 1, 0}))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	assert.Panics(t, func() { matrix.WithStochasticCheck(-1) })
	assert.Panics(t, func() { matrix.WithBounds(0, 10) })
}

func TestBuildGraph_BidirectionalChildren(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	g, err := matrix.BuildGraph(m)
	require.NoError(t, err)
	assert.True(t, g.BidirectionalChildren())

	g, err = matrix.BuildGraph(m, matrix.WithBidirectionalChildren(false))
	require.NoError(t, err)
	child, err := g.AddChild(0, core.Point{X: 50, Y: 50})
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, child))
	assert.False(t, g.HasEdge(child, 0))
}

func TestBuildGraph_Empty(t *testing.T) {
	g, err := matrix.BuildGraph(&mat.Dense{})
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

// TestTransitionMatrix_RoundTrip VERIFIES export(import(P)) == P for stochastic P.
func TestTransitionMatrix_RoundTrip(t *testing.T) {
	for _, rows := range [][][]float64{cycleRows(6), tenState} {
		m, err := matrix.FromRows(rows)
		require.NoError(t, err)
		g, err := matrix.BuildGraph(m)
		require.NoError(t, err)

		p, ids, err := matrix.TransitionMatrix(g)
		require.NoError(t, err)
		require.Len(t, ids, len(rows))
		assert.True(t, mat.EqualApprox(m, p, 1e-12))
	}
}

func TestTransitionMatrix_SinksAndScaling(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 6))
	require.NoError(t, g.AddEdge(2, 0, 0))

	p, ids, err := matrix.TransitionMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, ids)
	want := mat.NewDense(3, 3, []float64{
		0, 0.25, 0.75,
		0, 1, 0, // sink stays put
		0, 0, 1, // zero mass stays put
	})
	assert.True(t, mat.EqualApprox(want, p, eps), "got\n%v", mat.Formatted(p))

	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, mat.Sum(p.RowView(i)), eps)
	}
}

func TestTransitionMatrix_Edge(t *testing.T) {
	_, _, err := matrix.TransitionMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	p, ids, err := matrix.TransitionMatrix(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.True(t, p.IsEmpty())
}
