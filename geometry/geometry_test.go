// SPDX-License-Identifier: MIT
// Package geometry_test verifies overlap detection, separation, segment
// intersection, child placement and hit-testing.

package geometry_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/geometry"
)

const (
	radius = 15.0
	eps    = 1e-9
)

func pt(x, y float64) core.Point { return core.Point{X: x, Y: y} }

// newEngine builds an engine with r=15 over a fresh lenient graph.
func newEngine(t *testing.T, opts ...core.GraphOption) (*core.Graph, *geometry.Engine) {
	t.Helper()
	g := core.NewGraph(opts...)
	e, err := geometry.NewEngine(g, geometry.WithRadius(radius))
	require.NoError(t, err)

	return g, e
}

// newSquare places 0..3 on the corners of a 100×100 square.
func newSquare(t *testing.T) (*core.Graph, *geometry.Engine) {
	t.Helper()
	g, e := newEngine(t)
	g.AddNode(0, pt(0, 0))
	g.AddNode(1, pt(100, 0))
	g.AddNode(2, pt(100, 100))
	g.AddNode(3, pt(0, 100))

	return g, e
}

func TestNewEngine_Validation(t *testing.T) {
	_, err := geometry.NewEngine(nil)
	assert.ErrorIs(t, err, geometry.ErrGraphNil)

	g := core.NewGraph()
	_, err = geometry.NewEngine(g, geometry.WithRadius(0))
	assert.ErrorIs(t, err, geometry.ErrBadRadius)
	_, err = geometry.NewEngine(g, geometry.WithRadius(math.NaN()))
	assert.ErrorIs(t, err, geometry.ErrBadRadius)
	_, err = geometry.NewEngine(g, geometry.WithBounds(0, 10))
	assert.ErrorIs(t, err, geometry.ErrBadBounds)

	e, err := geometry.NewEngine(g)
	require.NoError(t, err)
	assert.Equal(t, geometry.DefaultRadius, e.Radius())
	w, h := e.Bounds()
	assert.Equal(t, geometry.DefaultWidth, w)
	assert.Equal(t, geometry.DefaultHeight, h)
	assert.Same(t, g, e.Graph())
}

// TestNodeOverlaps_Separate VERIFIES the close-pair scenario: distance 5 < 30
// is reported, and one pass pushes the second node r along the x axis.
func TestNodeOverlaps_Separate(t *testing.T) {
	g, e := newEngine(t)
	g.AddNode(0, pt(100, 100))
	g.AddNode(1, pt(105, 100))
	g.AddNode(2, pt(400, 400))

	assert.Equal(t, []geometry.NodePair{{A: 0, B: 1}}, e.NodeOverlaps())

	assert.Equal(t, 1, e.SeparateOverlappingNodes())
	p0, _ := g.Position(0)
	p1, _ := g.Position(1)
	assert.Equal(t, pt(100, 100), p0, "first node stays put")
	assert.InDelta(t, 120, p1.X, eps)
	assert.InDelta(t, 100, p1.Y, eps)

	d, err := e.Distance(0, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, radius)
}

func TestSeparate_Coincident(t *testing.T) {
	g, e := newEngine(t)
	g.AddNode(0, pt(50, 50))
	g.AddNode(1, pt(50, 50))

	require.Equal(t, 1, e.SeparateOverlappingNodes())
	p1, _ := g.Position(1)
	step := radius / math.Sqrt2
	assert.InDelta(t, 50+step, p1.X, eps)
	assert.InDelta(t, 50+step, p1.Y, eps)
}

// TestSeparate_Repeated VERIFIES repeated passes eventually clear a cluster.
func TestSeparate_Repeated(t *testing.T) {
	g, e := newEngine(t)
	for i := 0; i < 5; i++ {
		g.AddNode(core.NodeID(i), pt(200+float64(i), 200))
	}
	for i := 0; i < 50 && len(e.NodeOverlaps()) > 0; i++ {
		e.SeparateOverlappingNodes()
	}
	assert.Empty(t, e.NodeOverlaps())
	assert.Equal(t, 0, e.SeparateOverlappingNodes())
}

func TestOrient(t *testing.T) {
	assert.Equal(t, geometry.Collinear, geometry.Orient(pt(0, 0), pt(1, 1), pt(2, 2)))
	a := geometry.Orient(pt(0, 0), pt(10, 0), pt(10, 10))
	b := geometry.Orient(pt(0, 0), pt(10, 0), pt(10, -10))
	assert.NotEqual(t, geometry.Collinear, a)
	assert.NotEqual(t, geometry.Collinear, b)
	assert.NotEqual(t, a, b, "opposite sides must have opposite orientation")
	assert.Equal(t, "collinear", geometry.Collinear.String())
}

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name           string
		p1, q1, p2, q2 core.Point
		want           bool
	}{
		{"cross", pt(0, 0), pt(10, 10), pt(0, 10), pt(10, 0), true},
		{"parallel", pt(0, 0), pt(10, 0), pt(0, 5), pt(10, 5), false},
		{"disjoint", pt(0, 0), pt(1, 1), pt(5, 0), pt(6, -1), false},
		{"collinear overlap", pt(0, 0), pt(10, 0), pt(5, 0), pt(15, 0), true},
		{"collinear apart", pt(0, 0), pt(4, 0), pt(5, 0), pt(9, 0), false},
		{"T junction", pt(0, 0), pt(10, 0), pt(5, 0), pt(5, 10), true},
		{"touching endpoints", pt(0, 0), pt(5, 5), pt(5, 5), pt(10, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geometry.SegmentsIntersect(tc.p1, tc.q1, tc.p2, tc.q2))
			assert.Equal(t, tc.want, geometry.SegmentsIntersect(tc.p2, tc.q2, tc.p1, tc.q1))
		})
	}
}

// TestEdgesIntersect_Symmetric VERIFIES symmetry over random layouts.
func TestEdgesIntersect_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, e := newEngine(t)
	for i := 0; i < 4; i++ {
		g.AddNode(core.NodeID(i), pt(0, 0))
	}
	e1 := core.Edge{From: 0, To: 1}
	e2 := core.Edge{From: 2, To: 3}

	for round := 0; round < 500; round++ {
		for i := 0; i < 4; i++ {
			// Small integer grid makes collinear cases common.
			require.NoError(t, g.SetPosition(core.NodeID(i), pt(float64(rng.Intn(5)), float64(rng.Intn(5)))))
		}
		ab, err := e.EdgesIntersect(e1, e2)
		require.NoError(t, err)
		ba, err := e.EdgesIntersect(e2, e1)
		require.NoError(t, err)
		require.Equal(t, ab, ba, "round %d", round)
	}
}

func TestEdgesIntersect_MissingNode(t *testing.T) {
	_, e := newSquare(t)
	_, err := e.EdgesIntersect(core.Edge{From: 0, To: 2}, core.Edge{From: 1, To: 9})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestOverlappingEdgePairs VERIFIES crossing diagonals are reported and
// edges meeting at a shared node never are.
func TestOverlappingEdgePairs(t *testing.T) {
	g, e := newSquare(t)
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	pairs := e.OverlappingEdgePairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, core.Edge{From: 0, To: 2, Weight: 1}, pairs[0].A)
	assert.Equal(t, core.Edge{From: 1, To: 3, Weight: 1}, pairs[0].B)
}

func TestOverlappingEdgePairs_SharedEndpoint(t *testing.T) {
	g, e := newEngine(t)
	// 2 sits on segment 0-1, so the segments of (0,1) and (1,2) overlap.
	g.AddNode(0, pt(0, 0))
	g.AddNode(1, pt(100, 0))
	g.AddNode(2, pt(50, 0))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	assert.Empty(t, e.OverlappingEdgePairs())
	hit, err := e.EdgesIntersect(core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2})
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestChildPosition_Escalates(t *testing.T) {
	g, e := newEngine(t)
	g.AddNode(0, pt(100, 100))
	g.AddNode(1, pt(150, 150))

	p, err := e.ChildPosition(0)
	require.NoError(t, err)
	// 50 collides with node 1, 70 is still within 2r, 110 is clear.
	assert.Equal(t, pt(210, 210), p)

	_, err = e.ChildPosition(9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestAddChild_Clearance VERIFIES fresh ids and ≥2r clearance from every
// pre-existing node, over a crowded random layout.
func TestAddChild_Clearance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, e := newEngine(t)
	for i := 0; i < 30; i++ {
		g.AddNode(core.NodeID(i), pt(rng.Float64()*300, rng.Float64()*300))
	}

	for round := 0; round < 20; round++ {
		before := g.Nodes()
		parent := before[rng.Intn(len(before))]

		child, err := e.AddChild(parent)
		require.NoError(t, err)
		assert.NotContains(t, before, child)

		cp, _ := g.Position(child)
		for _, id := range before {
			p, _ := g.Position(id)
			assert.GreaterOrEqual(t, r2.Norm(r2.Sub(cp, p)), 2*radius, "child %d vs %d", child, id)
		}
		assert.True(t, g.HasEdge(parent, child))
		assert.True(t, g.HasEdge(child, parent))
	}
}

func TestNodeAt(t *testing.T) {
	g, e := newEngine(t)
	g.AddNode(5, pt(100, 100))
	g.AddNode(6, pt(110, 100))

	id, ok := e.NodeAt(pt(104, 100))
	require.True(t, ok)
	assert.Equal(t, core.NodeID(5), id, "insertion order wins")

	id, ok = e.NodeAt(pt(125, 100))
	require.True(t, ok, "boundary is inclusive")
	assert.Equal(t, core.NodeID(6), id)

	_, ok = e.NodeAt(pt(300, 300))
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	g := core.NewGraph()
	e, err := geometry.NewEngine(g, geometry.WithBounds(200, 100))
	require.NoError(t, err)
	g.AddNode(0, pt(10, 10))
	g.AddNode(1, pt(-5, 50))
	g.AddNode(2, pt(150, 120))
	assert.False(t, e.InsideBounds())

	moved := e.EnsureInsideBounds(rand.New(rand.NewSource(3)))
	assert.Equal(t, 2, moved)
	assert.True(t, e.InsideBounds())
	p0, _ := g.Position(0)
	assert.Equal(t, pt(10, 10), p0, "in-bounds nodes are untouched")

	e.ScatterPositions(nil)
	assert.True(t, e.InsideBounds())
}

func TestCircularLayout(t *testing.T) {
	pos := geometry.CircularLayout(4, 800, 600)
	require.Len(t, pos, 4)
	assert.InDelta(t, 640, pos[0].X, eps)
	assert.InDelta(t, 300, pos[0].Y, eps)
	assert.InDelta(t, 400, pos[1].X, eps)
	assert.InDelta(t, 540, pos[1].Y, eps)
	assert.Nil(t, geometry.CircularLayout(0, 800, 600))
}

func TestLabelPosition_EdgeLabelAt(t *testing.T) {
	g, e := newEngine(t)
	g.AddNode(0, pt(0, 0))
	g.AddNode(1, pt(100, 0))
	require.NoError(t, g.AddEdge(0, 1, 0.5))

	p, err := e.LabelPosition(0, 1, 20)
	require.NoError(t, err)
	assert.InDelta(t, 50, p.X, eps)
	assert.InDelta(t, 20, p.Y, eps)

	ed, ok := e.EdgeLabelAt(pt(52, 18), 10, 20)
	require.True(t, ok)
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 0.5}, ed)

	_, ok = e.EdgeLabelAt(pt(50, -20), 10, 20)
	assert.False(t, ok)

	_, err = e.LabelPosition(0, 7, 20)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
