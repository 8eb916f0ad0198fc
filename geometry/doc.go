// Package geometry answers planar questions about a core.Graph: which node
// circles overlap, which edge segments cross, where a new child node can be
// placed, which node or weight label sits under a pointer, and whether the
// layout fits inside the window bounds.
//
// What:
//
//   - NodeOverlaps: unordered node pairs whose centers are closer than 2r.
//   - SeparateOverlappingNodes: one relaxation pass pushing the second node
//     of each overlapping pair away from the first by exactly r.
//   - SegmentsIntersect / EdgesIntersect: orientation-based segment test with
//     collinear bounding-box special cases; edges that share an endpoint id
//     never count as crossing.
//   - OverlappingEdgePairs: every crossing pair of distinct edges.
//   - ChildPosition / AddChild: escalating (50,50)+ offset from the parent
//     until the candidate is at least 2r from every node.
//   - NodeAt / EdgeLabelAt: hit-testing in insertion order.
//   - InsideBounds / EnsureInsideBounds / ScatterPositions: window containment.
//   - CircularLayout / LabelPosition: placement helpers for renderers.
//
// Every query recomputes from the Graph's current positions; nothing is
// cached, so callers may interleave queries and mutations freely.
//
// Complexity:
//
//   - NodeOverlaps, SeparateOverlappingNodes: O(V²)
//   - OverlappingEdgePairs: O(E²)
//   - ChildPosition: O(k·V) for k offset escalations
//
// Vector math uses gonum's spatial/r2.
package geometry
