// Package dijkstra computes single-source shortest paths over a core.Graph
// in one call.
//
// Overview:
//
//   - Settles every reachable coordinate in increasing distance order using a
//     min-heap with lazy decrease-key (stale heap entries are skipped on pop).
//   - ReturnPath: returns the predecessor map for route reconstruction.
//   - MaxDistance: stops once the next settled distance exceeds the cap.
//   - InfEdgeThreshold: edges at or above the threshold are treated as walls.
//
// When to use:
//
//   - When the whole distance field is wanted at once (for example to pick
//     the nearest of many goals), rather than a single route stepped over
//     frames with search.Ticker.
//   - As a reference answer when checking the steppable weighted searches.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra
