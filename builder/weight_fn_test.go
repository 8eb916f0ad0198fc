// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvwalk/builder"
)

// TestWeightFn_NilRNG VERIFIES random distributions fall back to the default.
func TestWeightFn_NilRNG(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 9)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.ExponentialWeightFn(1)(nil))
	assert.Equal(t, 4.0, builder.ConstantWeightFn(4)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
}

func TestWeightFn_Ranges(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	uni := builder.UniformWeightFn(2, 3)
	exp := builder.ExponentialWeightFn(4)
	var sum float64
	const n = 5000
	for i := 0; i < n; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 3.0)

		e := exp(rng)
		assert.GreaterOrEqual(t, e, 0.0)
		sum += e
	}
	assert.InDelta(t, 0.25, sum/n, 0.02, "Exp(4) has mean 1/4")
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(rng))
}
