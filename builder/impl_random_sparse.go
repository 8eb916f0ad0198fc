// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_random_sparse.go: RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like: include each admissible edge independently with prob p.
//   - Directed: ordered pairs (i,j), i≠j. Undirected: unordered pairs i<j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order is i asc, then j asc, so a fixed seed fixes the edge set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// RandomSparse returns a Constructor sampling n nodes with independent edge
// probability p. Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addNodes(g, ring(cfg, n))
		directed := g.Directed()

		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial is one Bernoulli(p) draw; p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}

	return cfg.rng.Float64() < p
}
