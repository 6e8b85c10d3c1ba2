// Package gridgraph treats a 2D grid of cells as a graph, enabling
// bounds-aware neighbor lookups and component analysis.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a Wall value.
//   - Coord is a comparable (row, col) pair used as a map key.
//   - Identifies connected components of cells whose value is not Wall.
//
// Why:
//
//   - Heightmaps: basins are the components bounded by height-9 ridges.
//   - Game maps: contiguous walkable regions.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Options:
//
//   - GridOptions.Wall: impassable value, also the largest accepted value.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellRange: a value lies outside [0, Wall].
package gridgraph
