// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvwalk/geometry"
)

// TestBuilderConfig_Defaults verifies deterministic defaults and last-wins options.
func TestBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	assert.Equal(t, geometry.DefaultWidth, cfg.width)
	assert.Equal(t, geometry.DefaultHeight, cfg.height)

	r := rand.New(rand.NewSource(3))
	cfg = newBuilderConfig(WithSeed(1), WithRand(r), WithConstantWeight(2), WithConstantWeight(5), WithBounds(10, 20))
	assert.Same(t, r, cfg.rng)
	assert.Equal(t, 5.0, cfg.weightFn(nil))
	assert.Equal(t, 10.0, cfg.width)
	assert.Equal(t, 20.0, cfg.height)
}
