// File: methods_vertices.go
// Role: Node lifecycle, lookup, enumeration and random sampling.
//
// Determinism:
//   - Nodes() returns coordinates sorted row-major (Y, then X).
//   - RandomNode() is reproducible when the graph is built WithSeed.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node at c if missing and returns the node stored there.
// Idempotent: adding an existing coordinate returns the existing node untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(c Coordinate) *Node {
	if n, ok := g.nodes[c]; ok {
		return n
	}
	n := newNode(c)
	n.slot = len(g.keys)
	g.nodes[c] = n
	g.keys = append(g.keys, c)

	return n
}

// Node returns the live node at c.
// Complexity: O(1).
func (g *Graph) Node(c Coordinate) (*Node, bool) {
	n, ok := g.nodes[c]

	return n, ok
}

// HasNode reports whether a node exists at c.
func (g *Graph) HasNode(c Coordinate) bool {
	_, ok := g.nodes[c]

	return ok
}

// RemoveNode disconnects the node at c from all neighbours and deletes it.
// Callers still holding the *Node see an edge-less node.
// Returns false if there was no node at c.
// Complexity: O(deg(c)·deg(neighbour)).
func (g *Graph) RemoveNode(c Coordinate) bool {
	n, ok := g.nodes[c]
	if !ok {
		return false
	}
	g.disconnect(n)

	// swap-remove from the sampling slice
	last := len(g.keys) - 1
	moved := g.keys[last]
	g.keys[n.slot] = moved
	g.nodes[moved].slot = n.slot
	g.keys = g.keys[:last]
	delete(g.nodes, c)

	return true
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Nodes returns all coordinates sorted row-major.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Coordinate {
	out := make([]Coordinate, len(g.keys))
	copy(out, g.keys)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// RandomNode returns a uniformly sampled node.
// Returns ErrEmptyGraph if the graph has no nodes.
// Complexity: O(1).
func (g *Graph) RandomNode() (*Node, error) {
	if len(g.keys) == 0 {
		return nil, ErrEmptyGraph
	}

	return g.nodes[g.keys[g.rng.Intn(len(g.keys))]], nil
}

// RandomNodeExcept samples uniformly among nodes other than except.
// Returns ErrEmptyGraph for an empty graph and ErrNoCandidate when except
// is the only node.
// Complexity: O(1).
func (g *Graph) RandomNodeExcept(except Coordinate) (*Node, error) {
	if len(g.keys) == 0 {
		return nil, ErrEmptyGraph
	}
	n, ok := g.nodes[except]
	if !ok {
		return g.RandomNode()
	}
	if len(g.keys) == 1 {
		return nil, fmt.Errorf("%w: only %v remains", ErrNoCandidate, except)
	}

	// Sample over every slot but the excluded one, skipping it by shifting.
	i := g.rng.Intn(len(g.keys) - 1)
	if i >= n.slot {
		i++
	}

	return g.nodes[g.keys[i]], nil
}

// disconnect removes every edge of n together with the mirrored back-edges.
func (g *Graph) disconnect(n *Node) int {
	former := n.clearNeighbors()
	for _, c := range former {
		if nb, ok := g.nodes[c]; ok {
			nb.removeNeighbor(n.position)
		}
	}

	return len(former)
}
