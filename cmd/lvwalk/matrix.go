// SPDX-License-Identifier: MIT
package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvwalk/internal/ui"
	"github.com/katalvlaran/lvwalk/matrix"
)

func (a *app) matrixCmd() *cobra.Command {
	var prec int
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the row-normalized transition matrix of the graph",
		Long: `matrix exports the graph as a row-stochastic matrix. Rows and columns
follow node insertion order; a node without outgoing mass keeps all of it
on itself.`,
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
			p, ids, err := matrix.TransitionMatrix(g)
			if err != nil {
				return err
			}

			headers := make([]string, len(ids)+1)
			for j, id := range ids {
				headers[j+1] = strconv.Itoa(int(id))
			}
			rows := make([][]string, len(ids))
			for i, id := range ids {
				row := make([]string, 0, len(ids)+1)
				row = append(row, strconv.Itoa(int(id)))
				for _, v := range mat.Row(nil, i, p) {
					row = append(row, strconv.FormatFloat(v, 'f', prec, 64))
				}
				rows[i] = row
			}
			ui.Table(cmd.OutOrStdout(), headers, rows)

			return nil
		},
	}
	cmd.Flags().IntVar(&prec, "precision", 2, "digits after the decimal point")

	return cmd
}
