// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// constants.go: method tags and minimum sizes shared by constructors.

package builder

// Method tags prefix constructor errors.
const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

// Minimum node counts.
const (
	// MinCycleNodes is the smallest ring without loops or parallel edges.
	MinCycleNodes = 3
	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinStarNodes is one hub plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a 3-ring plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes admits the single-node K_1.
	MinCompleteNodes = 1
	// MinRandomSparseNodes admits a single isolated node.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
