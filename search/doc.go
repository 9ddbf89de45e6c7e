// Package search is an incremental, pausable graph-search engine over a
// mutable core.Graph.
//
// What
//
//   - One Ticker drives depth-first, breadth-first, Dijkstra or A* search one
//     expansion per Tick, exposing its in-progress state (frontier, visited
//     set, most recently expanded node, partial path, per-node cost).
//   - The algorithms differ only through a Policy: frontier ordering plus the
//     edge-cost, cost-so-far and heuristic functions.
//   - Pausing is a PauseRegistry of independent flags, one per PauserID,
//     combined with OR; Step bypasses it for manual single-stepping.
//   - A Driver paces many tickers on a fixed interval decoupled from the
//     caller's frame rate.
//
// State machine
//
//	Idle ──Reset──▶ Running ──goal taken──▶ Complete
//	                   │
//	                   └──frontier exhausted──▶ Failed
//
//	Reset moves any state back to Running. Complete and Failed both report
//	PathComplete() == true; Failed leaves Path empty.
//
// Mutation tolerance
//
//	The ticker never mutates the graph and never caches neighbour lists, so
//	edges removed (for example by building placement) between two ticks just
//	shrink the neighbour set seen on the next expansion. Costs are recomputed
//	from live edge weights along the predecessor chain on demand.
//
// Relaxation
//
//	Weighted expansion re-parents a neighbour when tentative <= current cost:
//	equal-cost alternatives replace the recorded predecessor. Already expanded
//	neighbours are never re-parented.
//
// Usage
//
//	t, err := search.NewTicker(g, search.WithLogger(log.Default()))
//	if err != nil { ... }
//	if err := t.Reset(search.AStar, core.C(0, 0), core.C(9, 9)); err != nil {
//	    // errors.Is(err, search.ErrInvalidEndpoint)
//	}
//	for !t.PathComplete() {
//	    t.Step()
//	}
//	route := t.Path() // empty if unreachable
//
// Errors
//
//   - ErrGraphNil          NewTicker with a nil graph.
//   - ErrInvalidEndpoint   Reset with a start or end not in the graph.
//   - ErrUnknownAlgorithm  Reset/PolicyFor/ParseAlgorithm outside the four algorithms.
//   - ErrUnknownPauser     Pause/Resume with an id outside the closed set.
//   - ErrBadInterval       Driver with a non-positive interval.
//
// Concurrency
//
//	Single-threaded and cooperative. Several tickers may share one graph;
//	none of them locks it.
package search
