// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links and visit order from a start node.
//
// What
//
//   - Explores nodes in non-decreasing hop count from the start.
//   - BFSResult holds Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree); PathTo rebuilds a shortest hop
//     path.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (an OnVisit error aborts).
//   - WithPositiveWeights ignores zero-weight edges, so the result is the set
//     of nodes a random walker can actually reach.
//   - WithMaxDepth(d) stops at depth d; 0 means no limit.
//
// Determinism
//
//	Successors are expanded in edge insertion order, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             nil graph
//   - ErrStartVertexNotFound  start node absent
//   - ErrOptionViolation      negative MaxDepth
//   - ErrNoPath               PathTo target not reached
//   - wrapped OnVisit errors and context cancellation
package bfs
