// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/internal/ui"
	"github.com/katalvlaran/lvwalk/markov"
)

func (a *app) stationaryCmd() *cobra.Command {
	var (
		tol     float64
		maxIter int
	)
	cmd := &cobra.Command{
		Use:   "stationary",
		Short: "Print the stationary distribution and closed classes",
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
			if !(tol > 0) || maxIter < 1 {
				return errors.New("--tol and --max-iter must be positive")
			}

			dist, err := markov.Stationary(g, markov.WithTolerance(tol), markov.WithMaxIter(maxIter))
			if err != nil {
				return err
			}
			a.log.Debug().Int("iterations", dist.Iterations).Msg("stationary converged")

			rows := make([][]string, len(dist.IDs))
			for i, id := range dist.IDs {
				rows[i] = []string{strconv.Itoa(int(id)), strconv.FormatFloat(dist.Pi[i], 'f', 6, 64)}
			}
			out := cmd.OutOrStdout()
			ui.Title(out, "stationary")
			ui.Table(out, []string{"node", "pi"}, rows)

			classes, err := markov.ClosedClasses(g)
			if err != nil {
				return err
			}
			transient, err := markov.Transient(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "closed classes: %v\n", classes)
			fmt.Fprintf(out, "transient: %v\n", transient)
			fmt.Fprintf(out, "%s irreducible\n", ui.StatusIcon(len(classes) == 1 && len(transient) == 0))

			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&tol, "tol", markov.DefaultTolerance, "L1 convergence tolerance")
	f.IntVar(&maxIter, "max-iter", markov.DefaultMaxIter, "iteration cap")

	return cmd
}
