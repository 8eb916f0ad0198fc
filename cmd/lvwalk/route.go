// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/bfs"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/dijkstra"
	"github.com/katalvlaran/lvwalk/internal/ui"
)

func (a *app) routeCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Show the fewest-hops and the most likely path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGraph(cfg)
			if err != nil {
				return err
			}
			src, dst := core.NodeID(from), core.NodeID(to)
			out := cmd.OutOrStdout()

			res, err := bfs.BFS(g, src, bfs.WithContext(cmd.Context()), bfs.WithPositiveWeights())
			if err != nil {
				return err
			}
			hops, err := res.PathTo(dst)
			if errors.Is(err, bfs.ErrNoPath) {
				fmt.Fprintf(out, "%s node %d is unreachable from %d\n", ui.StatusIcon(false), dst, src)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "fewest hops (%d): %s\n", len(hops)-1, joinIDs(hops, " → "))

			likely, p, err := dijkstra.MostLikelyPath(g, src, dst)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "most likely (p=%.4g): %s\n", p, joinIDs(likely, " → "))

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&from, "from", 0, "source node")
	f.IntVar(&to, "to", 0, "target node")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
