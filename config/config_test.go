// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvwalk.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15.0, cfg.Window.Radius)
	assert.Equal(t, 800.0, cfg.Window.Width)
	assert.Equal(t, 600.0, cfg.Window.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.Delay())
	assert.True(t, cfg.Graph.Directed)
	assert.True(t, cfg.Graph.BidirectionalChildren)
	assert.Len(t, cfg.Graph.Matrix, 10)
	for _, row := range cfg.Graph.Matrix {
		var sum float64
		for _, v := range row {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, `
[window]
radius = 20

[graph]
directed = false
topology = "cycle"
nodes = 6

[walk]
delay_ms = 250
seed = 42
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Window.Radius)
	assert.Equal(t, 800.0, cfg.Window.Width, "unset keys keep defaults")
	assert.False(t, cfg.Graph.Directed)
	assert.Equal(t, config.TopologyCycle, cfg.Graph.Topology)
	assert.Equal(t, 6, cfg.Graph.Nodes)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay())
	assert.Equal(t, int64(42), cfg.Walk.Seed)
}

func TestLoad_Matrix(t *testing.T) {
	path := writeFile(t, `
[graph]
matrix = [[0.0, 1.0], [0.5, 0.5]]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {0.5, 0.5}}, cfg.Graph.Matrix)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":       "[window\nradius = 1",
		"unknown key":  "[window]\ncolour = 1",
		"radius":       "[window]\nradius = 0",
		"bounds":       "[window]\nwidth = -1",
		"delay":        "[walk]\ndelay_ms = -5",
		"steps":        "[walk]\nsteps = -1",
		"topology":     "[graph]\ntopology = \"torus\"",
		"nodes":        "[graph]\ntopology = \"star\"\nnodes = 0",
		"probability":  "[graph]\nprobability = 1.5",
		"ragged":       "[graph]\nmatrix = [[0.0, 1.0], [1.0]]",
		"empty matrix": "[graph]\nmatrix = []",
	}
	for name, body := range cases {
		_, err := config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := config.Default()
	want.Walk.Seed = 7
	want.Graph.Topology = config.TopologyWheel
	require.NoError(t, config.Save(path, want))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "lvwalk", "config.toml"), config.Path())
}
