package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DomWilliams0/team-project-sub000/bfs"
	"github.com/DomWilliams0/team-project-sub000/core"
)

func lattice(t *testing.T, w, h int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.GenerateEmptyGraph(w, h))
	return g
}

func TestHops_Errors(t *testing.T) {
	_, err := bfs.Hops(nil, core.C(0, 0))
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Hops(lattice(t, 2, 2), core.C(5, 5))
	assert.ErrorIs(t, err, bfs.ErrRootNotFound)
}

func TestHops_ManhattanOnLattice(t *testing.T) {
	g := lattice(t, 5, 4)
	tree, err := bfs.Hops(g, core.C(1, 1))
	require.NoError(t, err)
	require.Len(t, tree.Order, 20)
	assert.Equal(t, core.C(1, 1), tree.Order[0])

	for c, n := range tree.Hops {
		want := abs(int(c.X)-1) + abs(int(c.Y)-1)
		assert.Equal(t, want, n, "%v", c)
	}
	// Order never steps back to a smaller hop count
	for i := 1; i < len(tree.Order); i++ {
		assert.LessOrEqual(t, tree.Hops[tree.Order[i-1]], tree.Hops[tree.Order[i]])
	}
}

func TestTree_PathTo(t *testing.T) {
	g := lattice(t, 1, 4)
	tree, err := bfs.Hops(g, core.C(0, 0))
	require.NoError(t, err)

	assert.Equal(t, []core.Coordinate{core.C(0, 0), core.C(0, 1), core.C(0, 2), core.C(0, 3)}, tree.PathTo(core.C(0, 3)))
	assert.Equal(t, []core.Coordinate{core.C(0, 0)}, tree.PathTo(core.C(0, 0)))
	assert.Nil(t, tree.PathTo(core.C(3, 3)))
	_, isChild := tree.Parent[core.C(0, 0)]
	assert.False(t, isChild)
}

func TestHops_StopsAtSnippedCells(t *testing.T) {
	g := lattice(t, 6, 1)
	g.SnipEdges(3, 4, 0, 1)
	tree, err := bfs.Hops(g, core.C(0, 0))
	require.NoError(t, err)

	assert.Len(t, tree.Order, 3)
	n, ok := tree.HopsTo(core.C(2, 0))
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	_, ok = tree.HopsTo(core.C(4, 0))
	assert.False(t, ok)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
