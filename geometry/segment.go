// SPDX-License-Identifier: MIT
// File: segment.go
// Role: Orientation-based segment intersection on plain points.

package geometry

import (
	"math"

	"github.com/katalvlaran/lvwalk/core"
)

// Orientation classifies an ordered point triple.
type Orientation int

const (
	// Collinear: the three points lie on one line.
	Collinear Orientation = iota
	// Clockwise: positive cross-product sign under this package's convention.
	Clockwise
	// CounterClockwise: negative cross-product sign.
	CounterClockwise
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Orient returns the orientation of (p, q, r) from the sign of
// (q.Y-p.Y)·(r.X-q.X) − (q.X-p.X)·(r.Y-q.Y).
// The convention is only required to be consistent within this package.
func Orient(p, q, r core.Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val > 0:
		return Clockwise
	case val < 0:
		return CounterClockwise
	default:
		return Collinear
	}
}

// OnSegment reports whether r lies inside the bounding box of segment pq.
// Callers use it only after establishing that p, q, r are collinear.
func OnSegment(p, q, r core.Point) bool {
	return math.Min(p.X, q.X) <= r.X && r.X <= math.Max(p.X, q.X) &&
		math.Min(p.Y, q.Y) <= r.Y && r.Y <= math.Max(p.Y, q.Y)
}

// SegmentsIntersect reports whether segment p1q1 and segment p2q2 touch or
// cross. The general case is the straddle test (o1≠o2 ∧ o3≠o4); collinear
// cases fall back to bounding-box containment. The result is symmetric in
// the two segments.
func SegmentsIntersect(p1, q1, p2, q2 core.Point) bool {
	o1 := Orient(p1, q1, p2)
	o2 := Orient(p1, q1, q2)
	o3 := Orient(p2, q2, p1)
	o4 := Orient(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == Collinear && OnSegment(p1, q1, p2):
		return true
	case o2 == Collinear && OnSegment(p1, q1, q2):
		return true
	case o3 == Collinear && OnSegment(p2, q2, p1):
		return true
	case o4 == Collinear && OnSegment(p2, q2, q1):
		return true
	}

	return false
}
