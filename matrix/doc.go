// Package matrix converts between n×n transition matrices and core.Graph.
//
// The matrix package provides:
//
//   - BuildGraph: imports a square non-negative matrix (any gonum mat.Matrix)
//     as a directed graph on nodes 0..n-1. Entry (i,j) > 0 becomes edge i→j
//     with that weight; zero entries produce no edge. Nodes are placed on the
//     circular layout of the configured bounds.
//   - FromRows: a convenience constructor from [][]float64 row literals.
//   - TransitionMatrix: exports a graph as a row-stochastic *mat.Dense,
//     row-normalizing outgoing weights. A node without outgoing mass stays
//     where it is (self-loop of 1.0).
//
// Row sums are not checked unless WithStochasticCheck is given; the walker
// normalizes on the fly, so unnormalized rows still produce a valid walk.
//
// Errors:
//
//   - ErrNilMatrix      nil matrix argument
//   - ErrNonSquare      rows != cols
//   - ErrBadShape       ragged row literals in FromRows
//   - ErrNegativeEntry  an entry < 0
//   - ErrNaNInf         an entry is NaN or ±Inf
//   - ErrNotStochastic  a row sum differs from 1 by more than eps (opt-in)
//   - ErrGraphNil       nil graph passed to TransitionMatrix
package matrix
