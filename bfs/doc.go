// Package bfs computes a one-shot breadth-first hop tree over a core.Graph.
//
// Hops(g, root) walks every node reachable from root once, in non-decreasing
// hop count, and returns a Tree with the hop count and tree parent of each
// reached node. Neighbours are read in each node's insertion order through a
// frontier.Queue, the same order the steppable search.Ticker uses, so on an
// unchanged graph both settle on identical trees.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrRootNotFound if root has no node.
package bfs
