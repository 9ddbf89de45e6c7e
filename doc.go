// Package pathgrid is a steppable path-finding toolkit for tile maps whose
// walls change while searches are running.
//
// What is in here?
//
//	A small set of packages that build on one mutable graph:
//		• core      – Coordinate-keyed Graph with weighted undirected edges, lattice generation, edge snipping
//		• frontier  – Stack, Queue and a stable PriorityQueue behind one Frontier interface
//		• search    – Ticker: DFS, BFS, Dijkstra and A* one expansion per tick, pausable, inspectable
//		• gridgraph – graphs from cell maps; building footprints placed on and lifted off a graph
//		• bfs, dfs, dijkstra – one-shot traversals used as reference answers
//
// Why steppable?
//
//   - Visualisation: each tick exposes the frontier, the visited set, the node
//     just expanded and the partial path.
//   - Frame independence: a search.Driver fires ticks on its own interval.
//   - Live edits: placing a building snips edges between ticks and the next
//     expansion simply sees fewer neighbours.
//
// Quick example:
//
//	(0,0)─(1,0)─(2,0)
//	  │     │     │
//	(0,1)─(1,1)─(2,1)
//
//	g := core.NewGraph()
//	_ = g.GenerateEmptyGraph(3, 2)
//	t, _ := search.NewTicker(g)
//	_ = t.Reset(search.AStar, core.C(0, 0), core.C(2, 1))
//	for !t.PathComplete() {
//	    t.Tick()
//	}
//
// See examples/ for a courier re-routing around a building placed mid-search.
package pathgrid
