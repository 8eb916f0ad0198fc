// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/dfs"
)

func (a *app) treeCmd() *cobra.Command {
	var (
		maxDepth int
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the depth-first tree from the root node",
		Long: `tree runs a depth-first search over positive-weight edges from the first
node without predecessors (or the first node) and prints one node per
line, indented by depth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGraph(cfg)
			if err != nil {
				return err
			}

			opts := []dfs.Option{
				dfs.WithContext(cmd.Context()),
				dfs.WithPositiveWeights(),
				dfs.WithMaxDepth(maxDepth),
			}
			if all {
				opts = append(opts, dfs.WithFullTraversal())
			}
			res, err := dfs.Tree(g, opts...)
			if err != nil {
				return err
			}
			a.log.Debug().Int("visited", len(res.PreOrder)).Int("skipped", res.SkippedNeighbors).Msg("tree built")

			return dfs.WriteTree(cmd.OutOrStdout(), res)
		},
	}
	f := cmd.Flags()
	f.IntVar(&maxDepth, "max-depth", -1, "depth limit (-1 = unlimited)")
	f.BoolVar(&all, "all", false, "continue into nodes unreachable from the root")

	return cmd
}
