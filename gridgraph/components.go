package gridgraph

// ConnectedComponents finds all contiguous regions of non-wall cells
// (CellValues[r][c] != Wall), according to gg.Conn connectivity.
// Components are seeded in row-major order; each component lists its
// cells in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Coord {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Coord

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			start := Coord{Row: r, Col: c}
			if gg.CellValues[r][c] == gg.Wall || seen[gg.Index(start)] {
				continue
			}
			// BFS to collect component
			queue := []Coord{start}
			seen[gg.Index(start)] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range gg.neighborOffsets {
					v := u.Add(d[0], d[1])
					if !gg.InBounds(v) || gg.At(v) == gg.Wall {
						continue
					}
					if vi := gg.Index(v); !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// ComponentOf returns the index into ConnectedComponents() of the
// component containing c, or -1 if c is a wall or out of bounds.
func (gg *GridGraph) ComponentOf(comps [][]Coord, c Coord) int {
	if !gg.InBounds(c) || gg.At(c) == gg.Wall {
		return -1
	}
	for i, comp := range comps {
		for _, cell := range comp {
			if cell == c {
				return i
			}
		}
	}
	return -1
}
