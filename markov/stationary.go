// SPDX-License-Identifier: MIT
// File: stationary.go
// Role: Stationary distribution by lazy power iteration.

package markov

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/matrix"
)

// Stationary computes π with π = πP, Σπ = 1, starting from the uniform
// vector and iterating π ← (π + πP)/2 until the L1 change drops below the
// tolerance.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrNoConvergence (the last iterate is
// still returned).
//
// Complexity: O(k·V²) for k iterations.
func Stationary(g *core.Graph, opts ...Option) (Distribution, error) {
	if g == nil {
		return Distribution{}, ErrGraphNil
	}
	if g.NodeCount() == 0 {
		return Distribution{}, ErrEmptyGraph
	}
	o := options{tol: DefaultTolerance, maxIter: DefaultMaxIter}
	for _, opt := range opts {
		opt(&o)
	}

	p, ids, err := matrix.TransitionMatrix(g)
	if err != nil {
		return Distribution{}, fmt.Errorf("Stationary: %w", err)
	}
	n := len(ids)
	pi := make([]float64, n)
	for i := range pi {
		pi[i] = 1 / float64(n)
	}
	cur := mat.NewVecDense(n, pi)
	next := mat.NewVecDense(n, nil)

	for k := 1; k <= o.maxIter; k++ {
		// Row vector times P is Pᵀ times the column vector.
		next.MulVec(p.T(), cur)
		next.AddVec(next, cur)
		next.ScaleVec(0.5, next)
		delta := floats.Distance(next.RawVector().Data, cur.RawVector().Data, 1)
		cur, next = next, cur
		if delta < o.tol {
			return distribution(ids, cur, k), nil
		}
	}

	return distribution(ids, cur, o.maxIter),
		fmt.Errorf("Stationary: %d iterations: %w", o.maxIter, ErrNoConvergence)
}

func distribution(ids []core.NodeID, v *mat.VecDense, k int) Distribution {
	pi := make([]float64, v.Len())
	copy(pi, v.RawVector().Data)
	// Renormalize away accumulated rounding.
	floats.Scale(1/floats.Sum(pi), pi)

	return Distribution{IDs: ids, Pi: pi, Iterations: k}
}
