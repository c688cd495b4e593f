package grid

import "math"

// MapPointer converts a pointer position to a cell coordinate:
//
//	col = clamp(floor(px / CellWidth), 0, Width-1)
//	row = clamp(floor((py - TopOffset) / CellWidth), 0, Height-1)
//
// The mapping is monotonic in each axis and never leaves the grid.
// NaN maps to 0. Callers reject positions at or above the offset line
// before mapping (see Paint).
// Complexity: O(1).
func (g *Grid) MapPointer(px, py float64) Coord {
	cw := float64(g.geo.CellWidth)
	col := axisIndex(px/cw, g.width-1)
	row := axisIndex((py-float64(g.geo.TopOffset))/cw, g.height-1)

	return Coord{X: col, Y: row}
}

// axisIndex floors v and clamps it to [0, hi] without overflowing on
// huge or infinite inputs.
func axisIndex(v float64, hi int) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v >= float64(hi):
		return hi
	}
	return int(math.Floor(v))
}

// Paintable reports whether a pointer at vertical position py is below the
// UI band and may paint.
func (g *Grid) Paintable(py float64) bool {
	return py > float64(g.geo.TopOffset)
}

// Paint maps the pointer position to a cell and Sets it to t.
// Positions at or above the offset line are ignored; everything else is
// clamped into the grid. Reports whether a cell was painted.
func (g *Grid) Paint(px, py float64, t CellType) bool {
	if !g.Paintable(py) {
		return false
	}
	g.Set(g.MapPointer(px, py), t)

	return true
}
