// Package walker implements a weighted random walker over a core.Graph.
//
// What:
//
//   - Step: draws the next node from the current node's outgoing edges with
//     probability w_i/Σw (weights need not be normalized). Zero-weight edges
//     carry no mass and are never chosen.
//   - Reset: jumps to a uniformly random node and restarts the step timer.
//   - AdvanceOnTimer: steps once when now−last ≥ delay. The embedding frame
//     loop polls it once per frame; there is no background goroutine.
//
// Stuck and degenerate states:
//
//   - A node with no outgoing edges freezes the walker: Step returns
//     (false, nil) and Current() is unchanged.
//   - A node whose outgoing weights are all zero is a degenerate walk: Step
//     returns (false, ErrDegenerateWalk) and Current() is unchanged.
//   - If the current node was removed from the graph, Step returns
//     ErrInvalidState; call Reset to recover.
//
// Determinism:
//
//   - Randomness comes only from the injected *rand.Rand (WithSeed/WithRand).
//     The same seed, graph and call order yield the same walk.
//
// Errors:
//
//   - ErrGraphNil        nil graph
//   - ErrEmptyGraph      graph without nodes
//   - ErrDegenerateWalk  all outgoing weights are zero
//   - ErrInvalidState    current node no longer exists
package walker
