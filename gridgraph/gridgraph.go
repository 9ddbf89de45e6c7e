package gridgraph

import (
	"fmt"

	"github.com/DomWilliams0/team-project-sub000/core"
	"github.com/DomWilliams0/team-project-sub000/dfs"
)

// FromCells builds a core.Graph from a non-empty, rectangular 2D slice
// indexed values[y][x].
//
// Every cell becomes a node at (x,y), so water stays queryable and can later
// be reconnected. Two neighbouring cells are joined only if both are land
// (value ≥ LandThreshold): orthogonal edges weigh 1, Conn8 diagonals √2.
// The graph's dimensions are set to the grid's.
//
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H×d) time and memory.
func FromCells(values [][]int, opts GridOptions) (*core.Graph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	gopts := append([]core.GraphOption{core.WithDimensions(w, h)}, opts.Graph...)
	g := core.NewGraph(gopts...)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.AddNode(core.C(int32(x), int32(y)))
		}
	}

	land := func(x, y int32) bool { return values[y][x] >= opts.LandThreshold }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !land(int32(x), int32(y)) {
				continue // water
			}
			c := core.C(int32(x), int32(y))
			for _, d := range opts.Conn.offsets() {
				nc := core.C(c.X+d[0], c.Y+d[1])
				// each pair once, from its row-major first cell
				if !nc.Less(c) && g.InBounds(nc) && land(nc.X, nc.Y) {
					if err := g.AddEdge(c, nc, stepCost(d)); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return g, nil
}

// Components finds all connected regions of g, including isolated nodes.
// Each component is sorted row-major, and components are ordered by their
// first coordinate, so the result is deterministic.
//
// Time:   O(V + E).
// Memory: O(V).
func Components(g *core.Graph) [][]core.Coordinate {
	seen := make(map[core.Coordinate]bool, g.NodeCount())
	var comps [][]core.Coordinate

	// Nodes is row-major, so each component is discovered from its first cell
	for _, c0 := range g.Nodes() {
		if seen[c0] {
			continue
		}
		comp, err := dfs.Component(g, c0)
		if err != nil {
			continue
		}
		for _, c := range comp {
			seen[c] = true
		}
		comps = append(comps, comp)
	}

	return comps
}
