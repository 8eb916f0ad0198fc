// SPDX-License-Identifier: MIT
// Package config loads the lvwalk TOML configuration: window and node
// geometry, graph source and mode, and walk pacing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig indicates an unreadable, unknown or out-of-range setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Graph sources. TopologyMatrix imports Graph.Matrix; the others call the
// builder constructor of the same name with Graph.Nodes nodes.
const (
	TopologyMatrix   = "matrix"
	TopologyCycle    = "cycle"
	TopologyPath     = "path"
	TopologyStar     = "star"
	TopologyWheel    = "wheel"
	TopologyComplete = "complete"
	TopologyRandom   = "random"
)

// Topologies lists every accepted Graph.Topology value.
var Topologies = []string{
	TopologyMatrix, TopologyCycle, TopologyPath, TopologyStar,
	TopologyWheel, TopologyComplete, TopologyRandom,
}

// Config holds lvwalk configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Graph  GraphConfig  `toml:"graph"`
	Walk   WalkConfig   `toml:"walk"`
}

// WindowConfig controls the canvas and node size.
type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Radius float64 `toml:"radius"`
}

// GraphConfig selects the graph source and mode.
type GraphConfig struct {
	Directed              bool        `toml:"directed"`
	BidirectionalChildren bool        `toml:"bidirectional_children"`
	Topology              string      `toml:"topology"`
	Nodes                 int         `toml:"nodes"`
	Probability           float64     `toml:"probability"`
	Matrix                [][]float64 `toml:"matrix"`
}

// WalkConfig controls walker pacing and randomness.
type WalkConfig struct {
	DelayMs int   `toml:"delay_ms"`
	Seed    int64 `toml:"seed"` // 0 picks a time-based seed
	Steps   int   `toml:"steps"`
}

// Default returns the default configuration: an 800×600 window, radius 15,
// a directed graph imported from a ten-state tree walk, 500 ms steps.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 800, Height: 600, Radius: 15},
		Graph: GraphConfig{
			Directed:              true,
			BidirectionalChildren: true,
			Topology:              TopologyMatrix,
			Nodes:                 8,
			Probability:           0.3,
			Matrix:                DefaultMatrix(),
		},
		Walk: WalkConfig{DelayMs: 500, Steps: 20},
	}
}

// DefaultMatrix returns the ten-state chain: leaves 0-2 around hub 3, bridge
// 4, hub 5 with leaves 6-9. Every row sums to 1.
func DefaultMatrix() [][]float64 {
	return [][]float64{
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0.25, 0.25, 0.25, 0, 0.25, 0, 0, 0, 0, 0},
		{0, 0, 0, 0.5, 0, 0.5, 0, 0, 0, 0},
		{0, 0, 0, 0, 0.2, 0, 0.2, 0.2, 0.2, 0.2},
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	}
}

// Dir returns the lvwalk config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "lvwalk")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads path over the defaults and validates the result. An empty path
// means Path(); a missing file yields the defaults. Unknown keys are errors.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w: %w", path, ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("Load(%s): unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks ranges and the graph source.
func (c *Config) Validate() error {
	switch {
	case !(c.Window.Width > 0) || !(c.Window.Height > 0):
		return fmt.Errorf("window %gx%g: %w", c.Window.Width, c.Window.Height, ErrInvalidConfig)
	case !(c.Window.Radius > 0):
		return fmt.Errorf("radius %g: %w", c.Window.Radius, ErrInvalidConfig)
	case c.Walk.DelayMs < 0:
		return fmt.Errorf("delay_ms %d: %w", c.Walk.DelayMs, ErrInvalidConfig)
	case c.Walk.Steps < 0:
		return fmt.Errorf("steps %d: %w", c.Walk.Steps, ErrInvalidConfig)
	case !slices.Contains(Topologies, c.Graph.Topology):
		return fmt.Errorf("topology %q not in %v: %w", c.Graph.Topology, Topologies, ErrInvalidConfig)
	case c.Graph.Probability < 0 || c.Graph.Probability > 1:
		return fmt.Errorf("probability %g: %w", c.Graph.Probability, ErrInvalidConfig)
	}
	if c.Graph.Topology != TopologyMatrix {
		if c.Graph.Nodes < 1 {
			return fmt.Errorf("nodes %d: %w", c.Graph.Nodes, ErrInvalidConfig)
		}
		return nil
	}
	if len(c.Graph.Matrix) == 0 {
		return fmt.Errorf("matrix is empty: %w", ErrInvalidConfig)
	}
	for i, row := range c.Graph.Matrix {
		if len(row) != len(c.Graph.Matrix) {
			return fmt.Errorf("matrix row %d has %d cols, want %d: %w", i, len(row), len(c.Graph.Matrix), ErrInvalidConfig)
		}
	}

	return nil
}

// Delay returns the walk step delay.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Walk.DelayMs) * time.Millisecond
}
