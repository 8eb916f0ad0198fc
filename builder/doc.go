// Package builder provides deterministic graph fixtures for walks and
// layouts: Cycle, Path, Star, Wheel, Complete and RandomSparse.
//
// Every topology is a Constructor applied through BuildGraph (or directly to
// an existing graph). Constructors allocate fresh node ids starting at
// g.NextID(), so several of them compose on one graph without colliding, and
// they place nodes inside the configured window:
//
//   - ring-like topologies on geometry.CircularLayout;
//   - Path on a horizontal line through the window center;
//   - Star and Wheel hubs at the window center.
//
// Directed graphs get directed edges (Cycle is a one-way ring). Hub spokes
// are emitted in both directions so a walker can leave every leaf.
// Undirected graphs mirror every edge in core.
//
// Weights come from a WeightFn (default constant 1). Stochastic topologies
// and random weight functions draw from the RNG set by WithSeed or WithRand;
// the same seed, options and constructor order yield the same graph.
//
// Option constructors panic on meaningless values; constructors themselves
// return sentinel errors and never panic.
package builder
