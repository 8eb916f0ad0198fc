// SPDX-License-Identifier: MIT
// File: methods_weights.go
// Role: Weight policies: NormalizeWeights and ParseWeight.

package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeWeights gives every outgoing edge of id the same weight
// 1/outDegree, so the weights sum to 1. Prior relative weighting is
// discarded. Only id's own outgoing entries change, also in undirected
// graphs, so neighbors keep their distributions.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//   - ErrNoOutgoingEdges if id is a sink (the graph is unchanged).
//
// Complexity: O(out-degree).
func (g *Graph) NormalizeWeights(id NodeID) error {
	if !g.HasNode(id) {
		return fmt.Errorf("NormalizeWeights(%d): %w", id, ErrNodeNotFound)
	}
	succ := g.out[id]
	if len(succ) == 0 {
		return fmt.Errorf("NormalizeWeights(%d): %w", id, ErrNoOutgoingEdges)
	}

	share := 1.0 / float64(len(succ))
	for _, to := range succ {
		g.weights[edgeKey{id, to}] = share
	}

	return nil
}

// OutWeightSum returns the total weight leaving id.
func (g *Graph) OutWeightSum(id NodeID) float64 {
	var sum float64
	for _, to := range g.out[id] {
		sum += g.weights[edgeKey{id, to}]
	}

	return sum
}

// ParseWeight converts user-entered text into an edge weight.
// Leading and trailing spaces are ignored. Anything that is not a finite
// real strictly greater than zero yields ErrInvalidWeightInput.
func ParseWeight(text string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("ParseWeight(%q): %w", text, ErrInvalidWeightInput)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, fmt.Errorf("ParseWeight(%q): %w", text, ErrInvalidWeightInput)
	}

	return w, nil
}
