// Package markov analyses a core.Graph as a discrete-time Markov chain whose
// transition probabilities are the row-normalized edge weights (see
// matrix.TransitionMatrix).
//
//   - Stationary: the long-run visit distribution π = πP by power iteration
//     on the lazy chain (I+P)/2, which has the same fixed points as P and
//     converges on periodic chains such as a plain cycle.
//   - ClosedClasses: the strongly connected components that no positive-weight
//     edge leaves. A walker that enters one never escapes; a sink is a closed
//     class of one.
//   - Transient: every node outside the closed classes.
//
// On reducible chains the stationary vector depends on the start vector;
// Stationary always starts from the uniform distribution.
package markov
