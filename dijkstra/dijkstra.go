package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/DomWilliams0/team-project-sub000/core"
)

// Dijkstra computes shortest distances from Options.Source to every
// reachable coordinate of g.
//
// Returns:
//
//   - dist: coordinate → minimum distance; unreachable coordinates are absent.
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
//
// Weights are non-negative by core.Graph construction, so no pre-scan is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[core.Coordinate]float64, map[core.Coordinate]core.Coordinate, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.HasSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, cfg.Source)
	}

	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.Coordinate]float64, V),
		prev:    make(map[core.Coordinate]core.Coordinate, V),
		visited: make(map[core.Coordinate]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.run()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds source→dest from a predecessor map returned by Dijkstra.
// Returns nil if dest was not reached.
func PathTo(dist map[core.Coordinate]float64, prev map[core.Coordinate]core.Coordinate, dest core.Coordinate) []core.Coordinate {
	if _, ok := dist[dest]; !ok {
		return nil
	}
	path := []core.Coordinate{dest}
	for cur := dest; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.Coordinate]float64
	prev    map[core.Coordinate]core.Coordinate
	visited map[core.Coordinate]bool
	pq      nodePQ
}

// run seeds the heap with the source and settles coordinates until the heap
// drains or the next distance exceeds MaxDistance.
func (r *runner) run() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{c: r.options.Source, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.c] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.c] = true
		r.relax(item.c)
	}

	// drop tentative distances that were never settled under the cap
	for c := range r.dist {
		if !r.visited[c] {
			delete(r.dist, c)
			delete(r.prev, c)
		}
	}
}

// relax tries to improve every neighbour of u.
func (r *runner) relax(u core.Coordinate) {
	n, ok := r.g.Node(u)
	if !ok {
		return
	}
	for _, v := range n.Neighbors() {
		w, _ := n.Weight(v)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{c: v, dist: nd})
	}
}

// nodeItem is a coordinate and its tentative distance.
type nodeItem struct {
	c    core.Coordinate
	dist float64
}

// nodePQ is a min-heap of *nodeItem by distance.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Lookup returns dist[c], or +Inf if c was not reached.
func Lookup(dist map[core.Coordinate]float64, c core.Coordinate) float64 {
	if d, ok := dist[c]; ok {
		return d
	}

	return math.Inf(1)
}
