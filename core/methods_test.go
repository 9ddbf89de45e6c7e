package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DomWilliams0/team-project-sub000/core"
)

func TestAddNode_Idempotent(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(core.C(1, 2))
	b := g.AddNode(core.C(1, 2))
	assert.Same(t, a, b)
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, core.C(1, 2), a.Position())
}

func TestNode_EqualityIsPositional(t *testing.T) {
	g1 := core.NewGraph()
	g2 := core.NewGraph()
	a := g1.AddNode(core.C(3, 4))
	b := g2.AddNode(core.C(3, 4))
	c := g2.AddNode(core.C(4, 3))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestAddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(core.C(0, 0), core.C(0, 1), 2.5))

	assert.True(t, g.HasEdge(core.C(0, 0), core.C(0, 1)))
	assert.True(t, g.HasEdge(core.C(0, 1), core.C(0, 0)))
	w, ok := g.EdgeWeight(core.C(0, 1), core.C(0, 0))
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_OverwriteKeepsOrder(t *testing.T) {
	g := core.NewGraph()
	hub := core.C(0, 0)
	require.NoError(t, g.AddEdge(hub, core.C(1, 0), 1))
	require.NoError(t, g.AddEdge(hub, core.C(2, 0), 1))
	require.NoError(t, g.AddEdge(hub, core.C(1, 0), 7))

	assert.Equal(t, []core.Coordinate{core.C(1, 0), core.C(2, 0)}, g.Neighbors(hub))
	w, _ := g.EdgeWeight(hub, core.C(1, 0))
	assert.Equal(t, 7.0, w)
}

func TestAddEdge_Errors(t *testing.T) {
	cases := []struct {
		name string
		a, b core.Coordinate
		w    float64
		err  error
	}{
		{"SelfLoop", core.C(1, 1), core.C(1, 1), 1, core.ErrLoopNotAllowed},
		{"Negative", core.C(0, 0), core.C(1, 1), -1, core.ErrBadWeight},
		{"NaN", core.C(0, 0), core.C(1, 1), math.NaN(), core.ErrBadWeight},
		{"Inf", core.C(0, 0), core.C(1, 1), math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			err := g.AddEdge(tc.a, tc.b, tc.w)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 0, g.NodeCount(), "rejected edge must not create nodes")
		})
	}
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(core.C(0, 0), core.C(1, 0), 1))

	assert.True(t, g.RemoveEdge(core.C(1, 0), core.C(0, 0)))
	assert.False(t, g.HasEdge(core.C(0, 0), core.C(1, 0)))
	assert.False(t, g.HasEdge(core.C(1, 0), core.C(0, 0)))

	// already gone, and missing endpoints: no-ops
	assert.False(t, g.RemoveEdge(core.C(0, 0), core.C(1, 0)))
	assert.False(t, g.RemoveEdge(core.C(9, 9), core.C(8, 8)))
	assert.Equal(t, 2, g.NodeCount())
}

func TestRemoveNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.GenerateEmptyGraph(3, 3))
	centre := core.C(1, 1)
	held, ok := g.Node(centre)
	require.True(t, ok)

	assert.True(t, g.RemoveNode(centre))
	assert.False(t, g.HasNode(centre))
	assert.Equal(t, 8, g.NodeCount())
	assert.Zero(t, held.Degree(), "held reference becomes edge-less")
	for _, c := range []core.Coordinate{core.C(1, 0), core.C(0, 1), core.C(2, 1), core.C(1, 2)} {
		assert.False(t, g.HasEdge(c, centre), "back-edge from %v", c)
	}
	assert.False(t, g.RemoveNode(centre))

	// sampling slice stays consistent after swap-remove
	for _, c := range g.Nodes() {
		require.True(t, g.RemoveNode(c))
	}
	assert.Zero(t, g.NodeCount())
}

func TestGenerateEmptyGraph_Lattice(t *testing.T) {
	for _, dim := range [][2]int{{1, 1}, {1, 4}, {4, 1}, {3, 5}, {6, 6}} {
		w, h := dim[0], dim[1]
		g := core.NewGraph()
		require.NoError(t, g.GenerateEmptyGraph(w, h))
		assert.Equal(t, w*h, g.NodeCount())
		assert.Equal(t, w, g.Width())
		assert.Equal(t, h, g.Height())
		assert.Equal(t, (w-1)*h+(h-1)*w, g.EdgeCount())

		for _, c := range g.Nodes() {
			assert.False(t, g.HasEdge(c, c))
			for _, d := range [][2]int32{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nc := core.C(c.X+d[0], c.Y+d[1])
				assert.Equal(t, g.InBounds(nc), g.HasEdge(c, nc), "%v→%v in %dx%d", c, nc, w, h)
			}
		}
	}
}

func TestGenerateEmptyGraph_NeighbourOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.GenerateEmptyGraph(3, 3))
	// N, E, S, W
	assert.Equal(t,
		[]core.Coordinate{core.C(1, 0), core.C(2, 1), core.C(1, 2), core.C(0, 1)},
		g.Neighbors(core.C(1, 1)))
}

func TestGenerateEmptyGraph_BadDimensions(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(core.C(0, 0), core.C(0, 1), 1))
	assert.ErrorIs(t, g.GenerateEmptyGraph(0, 3), core.ErrBadDimensions)
	assert.ErrorIs(t, g.GenerateEmptyGraph(3, -1), core.ErrBadDimensions)
	assert.Equal(t, 2, g.NodeCount(), "graph untouched on error")
}

func TestSnipEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.GenerateEmptyGraph(5, 5))

	n := g.SnipEdges(1, 3, 1, 3)
	assert.Equal(t, 4, n)
	assert.Equal(t, 25, g.NodeCount(), "snipping keeps nodes")
	for y := int32(1); y < 3; y++ {
		for x := int32(1); x < 3; x++ {
			node, ok := g.Node(core.C(x, y))
			require.True(t, ok)
			assert.Zero(t, node.Degree())
		}
	}
	// outside the footprint edges survive
	assert.True(t, g.HasEdge(core.C(0, 0), core.C(1, 0)))
	assert.False(t, g.HasEdge(core.C(1, 0), core.C(1, 1)))

	// snipping an already bare area reports nothing
	assert.Zero(t, g.SnipEdges(1, 3, 1, 3))
	// out of range is a no-op
	assert.Zero(t, g.SnipEdges(10, 20, 10, 20))
}

func TestEdgeSymmetry_RandomMutations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := core.NewGraph(core.WithRand(r))
	require.NoError(t, g.GenerateEmptyGraph(6, 6))

	pick := func() core.Coordinate { return core.C(int32(r.Intn(7)), int32(r.Intn(7))) }
	for i := 0; i < 500; i++ {
		a, b := pick(), pick()
		switch r.Intn(3) {
		case 0:
			if a != b {
				require.NoError(t, g.AddEdge(a, b, float64(r.Intn(5))))
			}
		case 1:
			g.RemoveEdge(a, b)
		default:
			x, y := int32(r.Intn(6)), int32(r.Intn(6))
			g.SnipEdges(x, x+int32(r.Intn(3)), y, y+int32(r.Intn(3)))
		}
	}
	nodes := g.Nodes()
	for _, a := range nodes {
		for _, b := range nodes {
			require.Equal(t, g.HasEdge(a, b), g.HasEdge(b, a), "asymmetric %v %v", a, b)
		}
	}
}

func TestRandomNode(t *testing.T) {
	g := core.NewGraph(core.WithSeed(42))
	_, err := g.RandomNode()
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = g.RandomNodeExcept(core.C(0, 0))
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	g.AddNode(core.C(0, 0))
	_, err = g.RandomNodeExcept(core.C(0, 0))
	assert.ErrorIs(t, err, core.ErrNoCandidate)

	require.NoError(t, g.GenerateEmptyGraph(4, 4))
	seen := make(map[core.Coordinate]int)
	for i := 0; i < 2000; i++ {
		n, err := g.RandomNodeExcept(core.C(2, 2))
		require.NoError(t, err)
		require.NotEqual(t, core.C(2, 2), n.Position())
		seen[n.Position()]++
	}
	assert.Len(t, seen, 15, "every other node is reachable by sampling")
}

func TestRandomNode_Reproducible(t *testing.T) {
	draw := func() []core.Coordinate {
		g := core.NewGraph(core.WithSeed(99))
		require.NoError(t, g.GenerateEmptyGraph(8, 8))
		out := make([]core.Coordinate, 10)
		for i := range out {
			n, err := g.RandomNode()
			require.NoError(t, err)
			out[i] = n.Position()
		}
		return out
	}
	assert.Equal(t, draw(), draw())
}

func TestCoordinate(t *testing.T) {
	c := core.C(-3, 7)
	assert.Equal(t, "(-3,7)", c.String())
	assert.Equal(t, [2]float64{-3, 7}, [2]float64(c.Point()))
	assert.True(t, core.C(5, 0).Less(core.C(0, 1)))
	assert.True(t, core.C(0, 1).Less(core.C(1, 1)))
	assert.False(t, c.Less(c))
}
