// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/config"
)

// app carries persistent flags and the state resolved from them.
type app struct {
	cfgPath  string
	logLevel string
	seed     int64
	topology string
	nodes    int

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "lvwalk",
		Short: "Weighted random walks over directed graphs",
		Long: `lvwalk builds a weighted directed graph from a stochastic matrix or a
generator topology, then walks it, analyses its stationary distribution
and checks the node layout for overlaps.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default "+config.Path()+")")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	pf.Int64Var(&a.seed, "seed", 0, "random seed, overrides [walk] seed (0 = time based)")
	pf.StringVar(&a.topology, "topology", "", fmt.Sprintf("graph source, overrides [graph] topology %v", config.Topologies))
	pf.IntVar(&a.nodes, "nodes", 0, "node count for generated topologies, overrides [graph] nodes")

	root.AddCommand(
		a.walkCmd(),
		a.stationaryCmd(),
		a.overlapsCmd(),
		a.treeCmd(),
		a.routeCmd(),
		a.matrixCmd(),
		a.configCmd(),
	)

	return root
}

// setup builds the run logger. Every run is tagged with a fresh id.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	lvl, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()

	return nil
}

// load reads the config file and applies flag overrides. A zero seed is
// replaced by a time-based one, which is logged so the run can be replayed.
func (a *app) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Walk.Seed = a.seed
	}
	if flags.Changed("topology") {
		cfg.Graph.Topology = a.topology
	}
	if flags.Changed("nodes") {
		cfg.Graph.Nodes = a.nodes
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Walk.Seed == 0 {
		cfg.Walk.Seed = time.Now().UnixNano()
	}
	a.log.Info().
		Str("topology", cfg.Graph.Topology).
		Int64("seed", cfg.Walk.Seed).
		Msg("config loaded")

	return cfg, nil
}
