// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

// PointMap is the validity bitmap for a board: which Points exist.
// HexParity selects odd-q vs even-q offset layout when Kind is Hex; it
// has no effect on a Square grid.
type PointMap struct {
	Width, Height int
	Kind          Kind_e
	HexParity     bool
	valid         [][]bool
}

// NewPointMap creates a width x height map with every point valid.
func NewPointMap(kind Kind_e, width, height int) *PointMap {
	valid := make([][]bool, height)
	for y := range valid {
		row := make([]bool, width)
		for x := range row {
			row[x] = true
		}
		valid[y] = row
	}
	return &PointMap{Width: width, Height: height, Kind: kind, valid: valid}
}

// SetValid marks p valid or invalid (a hole in the board).
func (m *PointMap) SetValid(p Point, ok bool) {
	if p.Y < 0 || p.Y >= m.Height || p.X < 0 || p.X >= m.Width {
		return
	}
	m.valid[p.Y][p.X] = ok
}

// IsValid reports whether p is a valid, in-bounds point.
func (m *PointMap) IsValid(p Point) bool {
	if p.Y < 0 || p.Y >= m.Height || p.X < 0 || p.X >= m.Width {
		return false
	}
	return m.valid[p.Y][p.X]
}

// IsValidGlobal reports whether a GlobalPoint is in-bounds and valid.
func (m *PointMap) IsValidGlobal(g GlobalPoint) bool {
	if !g.InBounds(m.Width, m.Height) {
		return false
	}
	return m.valid[g.Y][g.X]
}

// Points returns every valid point in row-major order; the order is
// stable and used as the fixed map-file iteration order (spec.md §6).
func (m *PointMap) Points() []Point {
	var pts []Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.valid[y][x] {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Connected reports whether every valid point is reachable from the
// first valid point found, walking only direct (unwrapped) neighbors.
func (m *PointMap) Connected() bool {
	pts := m.Points()
	if len(pts) == 0 {
		return true
	}
	seen := map[Point]bool{pts[0]: true}
	queue := []Point{pts[0]}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions(m.Kind) {
			n := p.ToGlobal().Add(UnitTranslation(m.Kind, d)).ToPoint()
			if m.IsValid(n) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen) == len(pts)
}
