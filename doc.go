// Package lvbasin finds low points and basins on digit heightmaps.
//
// A heightmap is a rectangular grid of heights 0..9. A low point is a cell
// strictly lower than its four orthogonal neighbors, with cells beyond the
// edge counting as 9. A basin is every cell reachable from a low point
// without stepping onto a 9.
//
// Packages:
//
//	gridgraph/ — immutable grid, Coord, neighbor offsets, connected components
//	heightmap/ — digit-grid parser, low points, risk levels
//	basin/     — queue-based flood fill with options, memoized Sizer
//	report/    — risk sum and largest-basin product, text/JSON/YAML output
//	cmd/lvbasin — command-line entrypoint
//
// Quick example (5×10 sample):
//
//	2199943210
//	3987894921
//	9856789892
//	8767896789
//	9899965678
//
// has 4 low points with total risk 15; the three largest basins (14, 9, 9)
// multiply to 1134.
//
//	go run ./cmd/lvbasin testdata/sample.txt
package lvbasin
