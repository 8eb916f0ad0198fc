// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/bfs"
	"github.com/katalvlaran/lvwalk/core"
)

// ExampleBFS finds the fewest-hops route through a small chain with a
// shortcut.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(0, 2, 0.1)

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(3)
	fmt.Println(path, res.Depth[3])
	// Output: [0 2 3] 2
}
