// File: methods_grid.go
// Role: Whole-graph regeneration into a 4-connected unit lattice.
package core

import "fmt"

// latticeOffsets lists the 4-neighbourhood in the order edges are inserted:
// N, E, S, W. Together with row-major node creation this fixes neighbour
// order, and therefore DFS/BFS expansion order, for generated graphs.
var latticeOffsets = [4][2]int32{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GenerateEmptyGraph discards every node and rebuilds the graph as a full
// 4-connected lattice of unit-cost edges over [0,w) × [0,h).
// The result is deterministic given w and h.
//
// Returns ErrBadDimensions if w < 1 or h < 1; the graph is left untouched then.
// Complexity: O(w·h).
func (g *Graph) GenerateEmptyGraph(w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	g.width, g.height = w, h
	g.nodes = make(map[Coordinate]*Node, w*h)
	g.keys = make([]Coordinate, 0, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.AddNode(Coordinate{X: int32(x), Y: int32(y)})
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Coordinate{X: int32(x), Y: int32(y)}
			n := g.nodes[c]
			for _, d := range latticeOffsets {
				nc := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
				if !g.InBounds(nc) {
					continue
				}
				// one direction per pass; the neighbour adds its own mirror
				n.setNeighbor(nc, 1)
			}
		}
	}

	return nil
}

// InBounds reports whether c lies within [0,Width) × [0,Height).
// Complexity: O(1).
func (g *Graph) InBounds(c Coordinate) bool {
	return c.X >= 0 && int(c.X) < g.width && c.Y >= 0 && int(c.Y) < g.height
}
