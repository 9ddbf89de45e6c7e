// Package dfs answers connectivity questions over a core.Graph with an
// iterative depth-first walk on a frontier.Stack.
//
//   - Component(g, from) lists the region containing from, row-major.
//   - Reachable(g, from, to) reports whether a path of edges joins them,
//     stopping as soon as to is seen.
//
// Both read live neighbour lists, so they reflect every snip made so far.
// Neither reproduces the expansion order of search.Ticker.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs
