// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeWeight/Neighbors,
//       EdgeCount and the rectangular SnipEdges used for building footprints.
// Determinism:
//   - Neighbors() returns insertion order.
package core

import (
	"fmt"
	"math"
)

// AddEdge ensures both nodes exist and links them with weight w in both directions.
// Re-adding an existing edge overwrites the weight and keeps neighbour order.
//
// Errors:
//   - ErrLoopNotAllowed if a == b.
//   - ErrBadWeight if w is negative, NaN or infinite.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b Coordinate, w float64) error {
	if a == b {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, a)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v-%v weight=%v", ErrBadWeight, a, b, w)
	}
	na := g.AddNode(a)
	nb := g.AddNode(b)
	na.setNeighbor(b, w)
	nb.setNeighbor(a, w)

	return nil
}

// RemoveEdge deletes the edge a–b in both directions.
// Missing nodes or edges are not an error; the result reports whether
// anything was removed.
// Complexity: O(deg).
func (g *Graph) RemoveEdge(a, b Coordinate) bool {
	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	removed := false
	if okA {
		removed = na.removeNeighbor(b) || removed
	}
	if okB {
		removed = nb.removeNeighbor(a) || removed
	}

	return removed
}

// HasEdge reports whether a has an edge to b.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b Coordinate) bool {
	n, ok := g.nodes[a]

	return ok && n.HasNeighbor(b)
}

// EdgeWeight returns the weight of a–b and whether the edge exists.
func (g *Graph) EdgeWeight(a, b Coordinate) (float64, bool) {
	n, ok := g.nodes[a]
	if !ok {
		return 0, false
	}

	return n.Weight(b)
}

// Neighbors returns the live neighbour list of c in insertion order,
// or nil if there is no node at c.
func (g *Graph) Neighbors(c Coordinate) []Coordinate {
	n, ok := g.nodes[c]
	if !ok {
		return nil
	}

	return n.Neighbors()
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.order)
	}

	return total / 2
}

// SnipEdges fully disconnects every node inside the half-open rectangle
// [baseX, upToX) × [baseY, upToY). Nodes stay in the graph so they can be
// queried or reconnected later. Coordinates without a node are skipped.
// Returns the number of nodes that lost at least one edge.
// Complexity: O(area·deg).
func (g *Graph) SnipEdges(baseX, upToX, baseY, upToY int32) int {
	snipped := 0
	for y := baseY; y < upToY; y++ {
		for x := baseX; x < upToX; x++ {
			n, ok := g.nodes[Coordinate{X: x, Y: y}]
			if !ok {
				continue
			}
			if g.disconnect(n) > 0 {
				snipped++
			}
		}
	}

	return snipped
}
