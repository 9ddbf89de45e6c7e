// Package gridgraph builds and edits core.Graph lattices from a cell map.
//
// What:
//
//   - FromCells turns a rectangular [][]int map into a core.Graph: every cell
//     is a node, and land cells (value ≥ LandThreshold) are joined to their
//     land neighbours under Conn4 or Conn8 connectivity.
//   - Components lists the connected regions of any core.Graph.
//   - Site places and removes rectangular building footprints on a shared
//     graph. Placement snips every edge of the covered cells and remembers
//     them with their weights; removal gives them back, except edges to cells
//     another footprint still covers, which wait for that footprint instead.
//     WithRelink also rebuilds plain lattice edges around freed cells.
//     Footprints are indexed in an R-tree for overlap and point-coverage
//     queries.
//
// Searches running on the same graph see placements from their next
// expansion on; nothing here touches a search's own state.
//
// Complexity:
//
//   - FromCells:  O(W×H×d), d = 4 or 8.
//   - Components: O(V + E).
//   - Place:      O(log F + w×h×deg), F = placed footprints.
//   - Remove:     O(e×log F), e = edges the footprint cut.
//   - At:         O(log F).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed cell map.
//   - ErrGraphNil: Site bound to a nil graph.
//   - ErrBadFootprint: non-positive size or outside the graph's dimensions.
//   - ErrFootprintOverlap: a footprint would cover an already covered cell.
//   - ErrFootprintNotFound: Remove with an unknown id.
package gridgraph
