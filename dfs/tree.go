package dfs

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvwalk/core"
)

// treeIndent is the per-depth indentation used by Format.
const treeIndent = "  "

// Root returns the first node (insertion order) with in-degree zero. When
// every node has a predecessor, as with bidirectional children, it falls
// back to the first inserted node.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
func Root(g *core.Graph) (core.NodeID, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if roots := g.Roots(); len(roots) > 0 {
		return roots[0], nil
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0, ErrEmptyGraph
	}

	return nodes[0], nil
}

// Tree runs DFS from Root(g). The result's PreOrder and Depth give the tree
// listing; see Format.
func Tree(g *core.Graph, opts ...Option) (*DFSResult, error) {
	root, err := Root(g)
	if err != nil {
		return nil, fmt.Errorf("Tree: %w", err)
	}

	return DFS(g, root, opts...)
}

// Format renders res as one line per node in pre-order, indented two spaces
// per depth level.
func Format(res *DFSResult) string {
	var b strings.Builder
	_ = WriteTree(&b, res)

	return b.String()
}

// WriteTree writes the Format listing of res to w.
func WriteTree(w io.Writer, res *DFSResult) error {
	if res == nil {
		return nil
	}
	for _, id := range res.PreOrder {
		if _, err := fmt.Fprintf(w, "%s%d\n", strings.Repeat(treeIndent, res.Depth[id]), id); err != nil {
			return err
		}
	}

	return nil
}
