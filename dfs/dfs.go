package dfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/DomWilliams0/team-project-sub000/core"
	"github.com/DomWilliams0/team-project-sub000/frontier"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")
	// ErrStartNotFound indicates that the start coordinate has no node.
	ErrStartNotFound = errors.New("dfs: start not in graph")
)

// walk visits every node reachable from start, calling visit on each as it
// is discovered. It stops early once visit returns false.
func walk(g *core.Graph, start core.Coordinate, visit func(core.Coordinate) bool) {
	seen := map[core.Coordinate]bool{start: true}
	if !visit(start) {
		return
	}
	st := frontier.NewStack()
	st.Add(start, 0)
	for !st.IsEmpty() {
		c, err := st.Take()
		if err != nil {
			return
		}
		for _, nb := range g.Neighbors(c) {
			if seen[nb] {
				continue
			}
			seen[nb] = true
			if !visit(nb) {
				return
			}
			st.Add(nb, 0)
		}
	}
}

// Component returns the connected region containing from, sorted row-major.
func Component(g *core.Graph, from core.Coordinate) ([]core.Coordinate, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(from) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, from)
	}

	var out []core.Coordinate
	walk(g, from, func(c core.Coordinate) bool {
		out = append(out, c)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out, nil
}

// Reachable reports whether a path of edges joins from and to.
// Returns false if g is nil or either coordinate has no node.
func Reachable(g *core.Graph, from, to core.Coordinate) bool {
	if g == nil || !g.HasNode(from) || !g.HasNode(to) {
		return false
	}
	found := false
	walk(g, from, func(c core.Coordinate) bool {
		found = c == to
		return !found
	})

	return found
}
