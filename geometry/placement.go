// SPDX-License-Identifier: MIT
// File: placement.go
// Role: Child placement, hit-testing, distance, bounds containment and
//       layout helpers consumed by renderers and the editor.

package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvwalk/core"
)

// ChildPosition returns where a new child of parent should go: the first
// candidate parent+(o,o), o=50, whose distance to every existing node is at
// least 2r. Each collision grows o by 20·k for the k-th collision, so the
// search always terminates for a finite node set.
//
// Errors: core.ErrNodeNotFound if parent is absent.
// Complexity: O(k·V) for k escalations.
func (e *Engine) ChildPosition(parent core.NodeID) (core.Point, error) {
	base, ok := e.g.Position(parent)
	if !ok {
		return core.Point{}, fmt.Errorf("ChildPosition(%d): %w", parent, core.ErrNodeNotFound)
	}

	offset := childOffsetStart
	for k := 1; ; k++ {
		cand := r2.Add(base, r2.Vec{X: offset, Y: offset})
		if !e.collides(cand) {
			return cand, nil
		}
		offset += childOffsetStep * float64(k)
	}
}

// AddChild places a new child of parent at ChildPosition and links it via
// core.Graph.AddChild (parent→child, plus child→parent when the graph has
// bidirectional children or is undirected). Returns the new node id.
func (e *Engine) AddChild(parent core.NodeID) (core.NodeID, error) {
	pos, err := e.ChildPosition(parent)
	if err != nil {
		return 0, err
	}

	return e.g.AddChild(parent, pos)
}

// collides reports whether any node is closer than 2r to p.
func (e *Engine) collides(p core.Point) bool {
	limit := 2 * e.radius
	for _, id := range e.g.Nodes() {
		q, _ := e.g.Position(id)
		if r2.Norm(r2.Sub(p, q)) < limit {
			return true
		}
	}

	return false
}

// NodeAt returns the first node, in insertion order, whose center lies
// within r of p.
func (e *Engine) NodeAt(p core.Point) (core.NodeID, bool) {
	for _, id := range e.g.Nodes() {
		q, _ := e.g.Position(id)
		if r2.Norm(r2.Sub(p, q)) <= e.radius {
			return id, true
		}
	}

	return 0, false
}

// Distance returns the Euclidean distance between the centers of a and b.
//
// Errors: core.ErrNodeNotFound.
func (e *Engine) Distance(a, b core.NodeID) (float64, error) {
	pa, ok := e.g.Position(a)
	if !ok {
		return 0, fmt.Errorf("Distance(%d,%d): node %d: %w", a, b, a, core.ErrNodeNotFound)
	}
	pb, ok := e.g.Position(b)
	if !ok {
		return 0, fmt.Errorf("Distance(%d,%d): node %d: %w", a, b, b, core.ErrNodeNotFound)
	}

	return r2.Norm(r2.Sub(pb, pa)), nil
}

// Inside reports whether p lies within [0,W]×[0,H].
func (e *Engine) Inside(p core.Point) bool {
	return p.X >= 0 && p.X <= e.width && p.Y >= 0 && p.Y <= e.height
}

// InsideBounds reports whether every node lies within the window.
func (e *Engine) InsideBounds() bool {
	for _, id := range e.g.Nodes() {
		p, _ := e.g.Position(id)
		if !e.Inside(p) {
			return false
		}
	}

	return true
}

// EnsureInsideBounds re-draws every out-of-bounds node uniformly inside the
// window using rng and returns how many nodes moved. A nil rng uses a
// deterministic stream seeded with 1.
func (e *Engine) EnsureInsideBounds(rng *rand.Rand) int {
	rng = orDefault(rng)
	moved := 0
	for _, id := range e.g.Nodes() {
		p, _ := e.g.Position(id)
		if e.Inside(p) {
			continue
		}
		_ = e.g.SetPosition(id, e.randomPoint(rng))
		moved++
	}

	return moved
}

// ScatterPositions re-draws every node uniformly inside the window.
func (e *Engine) ScatterPositions(rng *rand.Rand) {
	rng = orDefault(rng)
	for _, id := range e.g.Nodes() {
		_ = e.g.SetPosition(id, e.randomPoint(rng))
	}
}

func (e *Engine) randomPoint(rng *rand.Rand) core.Point {
	return core.Point{X: rng.Float64() * e.width, Y: rng.Float64() * e.height}
}

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(1))
	}

	return rng
}

// LabelPosition returns where the weight label of from→to is drawn: the
// segment midpoint shifted by offset along the left-hand normal. The
// segment length is floored at 1 so coincident endpoints stay finite.
//
// Errors: core.ErrNodeNotFound.
func (e *Engine) LabelPosition(from, to core.NodeID, offset float64) (core.Point, error) {
	p, q, err := e.segment(core.Edge{From: from, To: to})
	if err != nil {
		return core.Point{}, err
	}

	return labelPoint(p, q, offset), nil
}

func labelPoint(p, q core.Point, offset float64) core.Point {
	mid := r2.Scale(0.5, r2.Add(p, q))
	d := r2.Sub(q, p)
	length := math.Max(1, r2.Norm(d))
	normal := r2.Vec{X: -d.Y / length, Y: d.X / length}

	return r2.Add(mid, r2.Scale(offset, normal))
}

// EdgeLabelAt returns the first edge, in insertion order, whose weight label
// (placed by LabelPosition with offset) lies within labelRadius of p.
func (e *Engine) EdgeLabelAt(p core.Point, labelRadius, offset float64) (core.Edge, bool) {
	for _, ed := range e.g.Edges() {
		a, b, err := e.segment(ed)
		if err != nil {
			continue
		}
		if r2.Norm(r2.Sub(p, labelPoint(a, b, offset))) <= labelRadius {
			return ed, true
		}
	}

	return core.Edge{}, false
}

// CircularLayout returns n positions evenly spaced on a circle of radius
// min(w,h)/2.5 centered in a w×h window; position i sits at angle 2πi/n.
func CircularLayout(n int, w, h float64) []core.Point {
	if n <= 0 {
		return nil
	}
	center := core.Point{X: w / 2, Y: h / 2}
	radius := math.Min(w, h) / 2.5

	out := make([]core.Point, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		out[i] = r2.Add(center, r2.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}

	return out
}
