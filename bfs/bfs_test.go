// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/bfs"
	"github.com/katalvlaran/lvwalk/core"
)

// diamond builds 0→1, 0→2, 1→3, 2→3, 3→4 plus an isolated node 5.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]core.NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	g.AddNode(5, core.Point{})

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(diamond(t), 42)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(diamond(t), 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(diamond(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, map[core.NodeID]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 3}, res.Depth)
	assert.Equal(t, core.NodeID(1), res.Parent[3], "first discoverer wins")

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 3, 4}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, path)

	_, err = res.PathTo(5)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	assert.Equal(t, []core.NodeID{5}, res.Unreached(diamond(t)))
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(diamond(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, res.Order)
}

func TestBFS_CycleTerminates(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 0, 1))
	require.NoError(t, g.AddEdge(2, 2, 1))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 0}, res.Order)
}

func TestReachable_SkipsZeroWeights(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 0.5))
	require.NoError(t, g.AddEdge(1, 3, 1))

	got, err := bfs.Reachable(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2}, got)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 4, "without the filter zero-weight edges are followed")
}

func TestBFS_Hooks(t *testing.T) {
	var enq, deq []core.NodeID
	stop := errors.New("stop")
	_, err := bfs.BFS(diamond(t), 0,
		bfs.WithOnEnqueue(func(id core.NodeID, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id core.NodeID, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id core.NodeID, _ int) error {
			if id == 2 {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []core.NodeID{0, 1, 2}, deq)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, enq)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(diamond(t), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
