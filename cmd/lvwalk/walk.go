// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/bfs"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/editor"
	"github.com/katalvlaran/lvwalk/internal/ui"
	"github.com/katalvlaran/lvwalk/markov"
	"github.com/katalvlaran/lvwalk/walker"
)

// frame is the polling period of a real-time walk.
const frame = 16 * time.Millisecond

func (a *app) walkCmd() *cobra.Command {
	var (
		steps    int
		start    int
		realtime bool
		quiet    bool
	)
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Run a weighted random walk and report visit frequencies",
		Long: `walk places a walker on --start (or a random node) and takes up to --steps
weighted steps. It stops early when the walker is stuck on a node without
outgoing edges or every outgoing weight is zero. With --realtime each step
waits for the configured delay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("steps") {
				cfg.Walk.Steps = steps
			}
			g, err := buildGraph(cfg)
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg, g)
			if err != nil {
				return err
			}

			wopts := []walker.Option{
				walker.WithRand(rand.New(rand.NewSource(cfg.Walk.Seed))),
				walker.WithDelay(cfg.Delay()),
			}
			if cmd.Flags().Changed("start") {
				wopts = append(wopts, walker.WithStart(core.NodeID(start)))
			}
			w, err := walker.New(g, wopts...)
			if err != nil {
				return err
			}
			ctrl, err := editor.New(eng, editor.WithLogger(a.log), editor.WithWalker(w))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if reach, err := bfs.Reachable(g, w.Current()); err == nil && len(reach) < g.NodeCount() {
				fmt.Fprintf(out, "%s %d of %d nodes reachable from %d\n", ui.WarnIcon(), len(reach), g.NodeCount(), w.Current())
			}
			path := []core.NodeID{w.Current()}
			if realtime {
				path, err = a.runRealtime(cmd, ctrl, w, cfg.Walk.Steps, path)
			} else {
				path, err = runSteps(ctrl, w, cfg.Walk.Steps, path)
			}
			if err != nil && !errors.Is(err, walker.ErrDegenerateWalk) {
				return err
			}

			if !quiet {
				fmt.Fprintf(out, "path: %s\n", joinIDs(path, " → "))
			}
			switch {
			case errors.Is(err, walker.ErrDegenerateWalk):
				fmt.Fprintf(out, "%s node %d has only zero-weight edges\n", ui.WarnIcon(), w.Current())
			case w.Steps() < cfg.Walk.Steps && g.OutDegree(w.Current()) == 0:
				fmt.Fprintf(out, "%s stuck on node %d\n", ui.WarnIcon(), w.Current())
			}
			writeVisits(out, g, w)

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&steps, "steps", 0, "number of steps, overrides [walk] steps")
	f.IntVar(&start, "start", 0, "starting node (default random)")
	f.BoolVar(&realtime, "realtime", false, "pace steps by [walk] delay_ms")
	f.BoolVar(&quiet, "quiet", false, "omit the visited path")

	return cmd
}

// runSteps advances on demand until n moves or the walker stops.
func runSteps(ctrl *editor.Controller, w *walker.Walker, n int, path []core.NodeID) ([]core.NodeID, error) {
	for w.Steps() < n {
		moved, err := ctrl.NextStep()
		if err != nil || !moved {
			return path, err
		}
		path = append(path, w.Current())
	}

	return path, nil
}

// runRealtime polls the controller once per frame until n moves, the
// walker stops or the command context is cancelled.
func (a *app) runRealtime(cmd *cobra.Command, ctrl *editor.Controller, w *walker.Walker, n int, path []core.NodeID) ([]core.NodeID, error) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	ctx := cmd.Context()
	for w.Steps() < n {
		select {
		case <-ctx.Done():
			a.log.Info().Int("steps", w.Steps()).Msg("walk interrupted")
			return path, nil
		case now := <-ticker.C:
			before := w.LastStep()
			moved, err := ctrl.Tick(now)
			if err != nil {
				return path, err
			}
			if moved {
				path = append(path, w.Current())
				fmt.Fprintf(cmd.OutOrStdout(), "step %d: node %d\n", w.Steps(), w.Current())
			} else if !w.LastStep().Equal(before) {
				return path, nil
			}
		}
	}

	return path, nil
}

// writeVisits tabulates visit counts next to the stationary probability,
// when the chain has one.
func writeVisits(out io.Writer, g *core.Graph, w *walker.Walker) {
	visits := w.Visits()
	var total int
	for _, n := range visits {
		total += n
	}
	dist, err := markov.Stationary(g)

	rows := make([][]string, 0, len(visits))
	for _, id := range g.Nodes() {
		n := visits[id]
		if n == 0 {
			continue
		}
		pi := "-"
		if err == nil {
			pi = strconv.FormatFloat(dist.Of(id), 'f', 3, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(int(id)),
			strconv.Itoa(n),
			strconv.FormatFloat(float64(n)/float64(total), 'f', 3, 64),
			pi,
		})
	}
	ui.Table(out, []string{"node", "visits", "share", "stationary"}, rows)
}

func joinIDs(ids []core.NodeID, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}

	return strings.Join(parts, sep)
}
