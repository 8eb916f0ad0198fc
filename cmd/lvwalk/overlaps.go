// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/editor"
	"github.com/katalvlaran/lvwalk/geometry"
	"github.com/katalvlaran/lvwalk/internal/ui"
)

func (a *app) overlapsCmd() *cobra.Command {
	var (
		separate bool
		scatter  bool
		reset    bool
		grow     int
		growFrom int
	)
	cmd := &cobra.Command{
		Use:   "overlaps",
		Short: "Report overlapping nodes and crossing edges",
		Long: `overlaps lists node pairs closer than two radii and edge pairs whose
segments cross. --reset first places nodes on the circular layout,
--scatter first places them at random; --grow adds children to the
--grow-from node before the report; --separate then runs one separation
pass and reports again.`,
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
			eng, err := newEngine(cfg, g)
			if err != nil {
				return err
			}
			ctrl, err := editor.New(eng, editor.WithLogger(a.log))
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(cfg.Walk.Seed))
			switch {
			case reset:
				ctrl.ResetLayout()
			case scatter:
				eng.ScatterPositions(rng)
			}

			out := cmd.OutOrStdout()
			ui.Title(out, "overlaps")
			if grow > 0 {
				if err := growChildren(ctrl, g, core.NodeID(growFrom), grow); err != nil {
					return err
				}
				ui.Info.Fprintf(out, "grew %d children from %d\n\n", grow, growFrom)
			}
			writeOverlaps(out, eng)
			if separate {
				rep := ctrl.Reorganize()
				clamped := eng.EnsureInsideBounds(rng)
				ui.Info.Fprintf(out, "\nseparated: %d moved, %d clamped\n\n", rep.Moved, clamped)
				writeOverlaps(out, eng)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&separate, "separate", false, "run one separation pass")
	f.BoolVar(&scatter, "scatter", false, "scatter nodes at random before checking")
	f.BoolVar(&reset, "reset", false, "place nodes on the circular layout before checking")
	f.IntVar(&grow, "grow", 0, "add this many children to the --grow-from node")
	f.IntVar(&growFrom, "grow-from", 0, "parent node for --grow")
	cmd.MarkFlagsMutuallyExclusive("scatter", "reset")

	return cmd
}

// growChildren selects parent the way a click on it would and adds n
// children to it.
func growChildren(ctrl *editor.Controller, g *core.Graph, parent core.NodeID, n int) error {
	pos, ok := g.Position(parent)
	if !ok {
		return fmt.Errorf("--grow-from %d: %w", parent, core.ErrNodeNotFound)
	}
	if ctrl.Press(pos) != editor.HitNode {
		return fmt.Errorf("--grow-from %d: node is covered by an edge label", parent)
	}
	ctrl.Release()
	for range n {
		if _, err := ctrl.AddChildToSelected(); err != nil {
			return err
		}
	}

	return nil
}

func writeOverlaps(out io.Writer, eng *geometry.Engine) {
	nodes := eng.NodeOverlaps()
	edges := eng.OverlappingEdgePairs()

	fmt.Fprintf(out, "%s %d overlapping node pairs\n", ui.StatusIcon(len(nodes) == 0), len(nodes))
	rows := make([][]string, len(nodes))
	for i, p := range nodes {
		d, _ := eng.Distance(p.A, p.B)
		rows[i] = []string{strconv.Itoa(int(p.A)), strconv.Itoa(int(p.B)), strconv.FormatFloat(d, 'f', 1, 64)}
	}
	ui.Table(out, []string{"a", "b", "distance"}, rows)

	fmt.Fprintf(out, "%s %d crossing edge pairs\n", ui.StatusIcon(len(edges) == 0), len(edges))
	rows = make([][]string, len(edges))
	for i, p := range edges {
		rows[i] = []string{
			fmt.Sprintf("%d→%d", p.A.From, p.A.To),
			fmt.Sprintf("%d→%d", p.B.From, p.B.To),
		}
	}
	ui.Table(out, []string{"edge", "crosses"}, rows)
	fmt.Fprintf(out, "%s inside bounds\n", ui.StatusIcon(eng.InsideBounds()))
}
