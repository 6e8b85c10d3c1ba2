package heightmap

// orthogonal lists the four neighbor offsets compared for minimality.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsLowPoint reports whether c is strictly lower than all four
// orthogonal neighbors, substituting MaxHeight beyond the grid edge.
// A cell of height MaxHeight is therefore never a low point.
func (h *Heightmap) IsLowPoint(c Coord) bool {
	v := h.grid.At(c)
	for _, d := range orthogonal {
		if v >= h.grid.ValueOr(c.Add(d[0], d[1]), MaxHeight) {
			return false
		}
	}
	return true
}

// LowPoints scans the grid in row-major order and returns every low point.
// Complexity: O(rows × cols).
func (h *Heightmap) LowPoints() []Coord {
	var out []Coord
	for r := 0; r < h.grid.Height; r++ {
		for c := 0; c < h.grid.Width; c++ {
			if p := (Coord{Row: r, Col: c}); h.IsLowPoint(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Risk is the risk level of c: its height plus one.
func (h *Heightmap) Risk(c Coord) int {
	return h.grid.At(c) + 1
}

// RiskSum totals Risk over points.
func (h *Heightmap) RiskSum(points []Coord) int {
	sum := 0
	for _, p := range points {
		sum += h.Risk(p)
	}
	return sum
}
