package bfs

import (
	"errors"
	"fmt"

	"github.com/DomWilliams0/team-project-sub000/core"
	"github.com/DomWilliams0/team-project-sub000/frontier"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")
	// ErrRootNotFound is returned when the root coordinate has no node.
	ErrRootNotFound = errors.New("bfs: root not in graph")
)

// Tree is a breadth-first spanning tree of the nodes reachable from Root.
type Tree struct {
	Root core.Coordinate
	// Order lists reached nodes in the order they were taken from the queue.
	Order []core.Coordinate
	// Hops maps each reached node to its edge count from Root.
	Hops map[core.Coordinate]int
	// Parent maps each reached node except Root to its tree parent.
	Parent map[core.Coordinate]core.Coordinate
}

// Hops builds the breadth-first tree of g rooted at root.
func Hops(g *core.Graph, root core.Coordinate) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}

	t := &Tree{
		Root:   root,
		Hops:   map[core.Coordinate]int{root: 0},
		Parent: make(map[core.Coordinate]core.Coordinate),
	}
	q := frontier.NewQueue()
	q.Add(root, 0)
	for !q.IsEmpty() {
		c, err := q.Take()
		if err != nil {
			return nil, err
		}
		t.Order = append(t.Order, c)
		for _, nb := range g.Neighbors(c) {
			if _, seen := t.Hops[nb]; seen {
				continue
			}
			t.Hops[nb] = t.Hops[c] + 1
			t.Parent[nb] = c
			q.Add(nb, 0)
		}
	}

	return t, nil
}

// HopsTo returns the hop count to c and whether c was reached.
func (t *Tree) HopsTo(c core.Coordinate) (int, bool) {
	n, ok := t.Hops[c]

	return n, ok
}

// PathTo returns the tree path Root→dest, or nil if dest was not reached.
func (t *Tree) PathTo(dest core.Coordinate) []core.Coordinate {
	n, ok := t.Hops[dest]
	if !ok {
		return nil
	}
	path := make([]core.Coordinate, n+1)
	for c := dest; n >= 0; n-- {
		path[n] = c
		c = t.Parent[c]
	}

	return path
}
