// Package core provides the mutable grid graph that searches run over.
//
// The Graph G = (V,E) is keyed by Coordinate. Every Node owns an ordered
// neighbour table mapping neighbouring coordinates to edge weights:
//
//   - Node identity is its Coordinate. Two lookups of the same Coordinate
//     always resolve to the same *Node, so callers may keep plain Coordinates
//     around and query the live node whenever they need it.
//   - Neighbour order is insertion order. Depth- and breadth-first searches
//     iterate it directly, so the order is part of observable behavior.
//   - Edges are stored as coordinate handles, never as *Node pointers.
//     A removed or snipped node simply has no neighbours; nothing dangles.
//
// Invariants:
//
//   - AddEdge and RemoveEdge always act on both endpoints, so for every
//     pair (a,b): HasEdge(a,b) == HasEdge(b,a).
//   - No self-loops (AddEdge(c,c) → ErrLoopNotAllowed).
//   - Weights are finite and non-negative (otherwise ErrBadWeight).
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(c Coordinate) *Node                      // O(1), idempotent
//	Node(c Coordinate) (*Node, bool)                 // O(1)
//	RemoveNode(c Coordinate) bool                    // O(deg)
//	RandomNode() / RandomNodeExcept(c)               // O(1) expected
//
//	// Edge lifecycle
//	AddEdge(a, b Coordinate, w float64) error        // O(deg)
//	RemoveEdge(a, b Coordinate) bool                 // O(deg)
//	SnipEdges(baseX, upToX, baseY, upToY int32) int  // O(area·deg)
//
//	// Lattice
//	GenerateEmptyGraph(w, h int) error               // O(w·h)
//
// Concurrency:
//
// The graph is not synchronized. Searches and building placement are
// expected to run on one logical thread (a frame or tick loop); mutations
// landing between two search ticks are fine because searches re-read a
// node's neighbours on every expansion.
package core
