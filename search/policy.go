package search

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/planar"

	"github.com/DomWilliams0/team-project-sub000/core"
	"github.com/DomWilliams0/team-project-sub000/frontier"
)

// CostFunc returns the cost of stepping from one coordinate to a neighbour.
type CostFunc func(g *core.Graph, from, to core.Coordinate) float64

// HeuristicFunc estimates the remaining cost from c to goal.
type HeuristicFunc func(c, goal core.Coordinate) float64

// SoFarFunc returns the accumulated cost g(c) from the search start.
type SoFarFunc func(g *core.Graph, chain Chain, c core.Coordinate) float64

// Chain is a read-only view of a search's predecessor map.
type Chain interface {
	Start() core.Coordinate
	Predecessor(c core.Coordinate) (core.Coordinate, bool)
	// Links is the number of recorded predecessor links.
	Links() int
}

// Policy is the per-algorithm bundle consulted by the ticker: how the
// frontier is ordered and how g and h are computed.
//
//	Algorithm      Frontier   EdgeCost     CostSoFar          Heuristic
//	DepthFirst     LIFO       0            0                  0
//	BreadthFirst   FIFO       0            0                  0
//	Dijkstra       Priority   edge weight  sum along chain    0
//	AStar          Priority   edge weight  sum along chain    Euclidean
type Policy struct {
	Algorithm Algorithm
	Frontier  frontier.Kind
	EdgeCost  CostFunc
	CostSoFar SoFarFunc
	Heuristic HeuristicFunc
}

// PolicyFor returns the policy of alg.
func PolicyFor(alg Algorithm) (Policy, error) {
	switch alg {
	case DepthFirst:
		return Policy{alg, frontier.LIFO, ZeroCost, ZeroSoFar, ZeroHeuristic}, nil
	case BreadthFirst:
		return Policy{alg, frontier.FIFO, ZeroCost, ZeroSoFar, ZeroHeuristic}, nil
	case Dijkstra:
		return Policy{alg, frontier.Priority, EdgeWeight, AccumulatedCost, ZeroHeuristic}, nil
	case AStar:
		return Policy{alg, frontier.Priority, EdgeWeight, AccumulatedCost, Euclidean}, nil
	default:
		return Policy{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// Weighted reports whether the policy orders its frontier by cost.
func (p Policy) Weighted() bool { return p.Frontier == frontier.Priority }

// NewFrontier returns an empty frontier of the policy's kind.
func (p Policy) NewFrontier() (frontier.Frontier, error) {
	return frontier.New(p.Frontier)
}

// ZeroCost is the edge cost of the unweighted policies.
func ZeroCost(*core.Graph, core.Coordinate, core.Coordinate) float64 { return 0 }

// ZeroSoFar is the accumulated cost of the unweighted policies.
func ZeroSoFar(*core.Graph, Chain, core.Coordinate) float64 { return 0 }

// ZeroHeuristic turns A* into Dijkstra.
func ZeroHeuristic(core.Coordinate, core.Coordinate) float64 { return 0 }

// EdgeWeight reads the live weight of from–to; +Inf if the edge is gone.
func EdgeWeight(g *core.Graph, from, to core.Coordinate) float64 {
	w, ok := g.EdgeWeight(from, to)
	if !ok {
		return math.Inf(1)
	}

	return w
}

// AccumulatedCost walks the predecessor chain from c back to the start,
// summing live edge weights. It is recomputed on every call, never cached.
//
// Returns +Inf if c is not the start and has no predecessor, or if an edge
// along the chain has since been removed from the graph.
// Complexity: O(path length).
func AccumulatedCost(g *core.Graph, chain Chain, c core.Coordinate) float64 {
	start := chain.Start()
	total := 0.0
	// predecessor chains are acyclic; the bound only guards corrupt input
	for steps := 0; c != start; steps++ {
		prev, ok := chain.Predecessor(c)
		if !ok || steps > chain.Links() {
			return math.Inf(1)
		}
		total += EdgeWeight(g, prev, c)
		c = prev
	}

	return total
}

// Euclidean is the straight-line distance between c and goal.
func Euclidean(c, goal core.Coordinate) float64 {
	return planar.Distance(c.Point(), goal.Point())
}

// Manhattan is the 4-connected grid distance between c and goal.
// It is admissible on unit lattices and tighter than Euclidean there.
func Manhattan(c, goal core.Coordinate) float64 {
	return math.Abs(float64(c.X)-float64(goal.X)) + math.Abs(float64(c.Y)-float64(goal.Y))
}
