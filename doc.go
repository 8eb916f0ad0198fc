// Package lvwalk is an in-memory toolkit for weighted random walks over
// editable directed graphs.
//
// Subpackages:
//
//	core/      weighted directed Graph with node positions
//	geometry/  node and edge overlap detection, placement, bounds, labels
//	walker/    weighted random walker with a frame-polled step timer
//	matrix/    stochastic matrix import and transition matrix export (gonum/mat)
//	markov/    stationary distribution, closed classes and transient nodes
//	builder/   deterministic topology generators (cycle, path, star, ...)
//	bfs/       hop distances and reachability
//	dfs/       depth-first tree listing
//	dijkstra/  cheapest and most likely paths
//	editor/    pointer-driven editing controller with zerolog logging
//	config/    TOML configuration
//	cmd/lvwalk command line front end (cobra)
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 0, 1)
//	w, _ := walker.New(g, walker.WithSeed(1))
//	moved, err := w.Step()
//
//	go install github.com/katalvlaran/lvwalk/cmd/lvwalk@latest
package lvwalk
