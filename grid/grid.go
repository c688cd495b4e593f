package grid

// Grid is the mutable board. Cells are stored row-major: cells[y*width+x].
// Dimensions are fixed at construction.
type Grid struct {
	width, height int
	geo           Geometry
	cells         []CellType

	start        Coord
	hasStart     bool
	objective    Coord
	hasObjective bool
}

// NewGrid builds an all-Blank grid sized from the screen geometry.
// Returns ErrBadCellWidth, ErrBadOffset, ErrBadViewport or ErrEmptyGrid.
// Complexity: O(W×H) time and memory.
func NewGrid(geo Geometry) (*Grid, error) {
	cols, rows, err := geo.Validate()
	if err != nil {
		return nil, err
	}

	return &Grid{
		width:  cols,
		height: rows,
		geo:    geo,
		cells:  make([]CellType, cols*rows),
	}, nil
}

// New builds an all-Blank width×height grid with unit cells and no UI offset,
// so pointer coordinates and cell indices coincide.
func New(width, height int) (*Grid, error) {
	return NewGrid(Geometry{
		CellWidth:      1,
		ViewportWidth:  float64(width),
		ViewportHeight: float64(height),
	})
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Geometry returns the geometry the grid was built from.
func (g *Grid) Geometry() Geometry { return g.geo }

// Start returns the Start coordinate and whether one is designated.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// Objective returns the Objective coordinate and whether one is designated.
func (g *Grid) Objective() (Coord, bool) { return g.objective, g.hasObjective }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to its row-major slot. c must be in bounds.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// clamp pulls c into the grid rectangle.
func (g *Grid) clamp(c Coord) Coord {
	return Coord{X: clampInt(c.X, 0, g.width-1), Y: clampInt(c.Y, 0, g.height-1)}
}

// Classify returns the tag of the cell at c (clamped into bounds).
// Complexity: O(1).
func (g *Grid) Classify(c Coord) CellType {
	return g.cells[g.index(g.clamp(c))]
}

// At is Classify for an (x, y) pair.
func (g *Grid) At(x, y int) CellType {
	return g.Classify(Coord{X: x, Y: y})
}

// Set assigns t to the cell at c, clamping c into bounds.
//
// Role transaction:
//  1. Designating Start (Objective) first reverts the previous holder to Blank
//     and records c as the new holder.
//  2. Overwriting the current Start (Objective) cell with a different tag
//     clears that role's presence flag.
//
// Set is idempotent: repeating the same call leaves the grid unchanged.
// Complexity: O(1).
func (g *Grid) Set(c Coord, t CellType) {
	c = g.clamp(c)
	i := g.index(c)
	prev := g.cells[i]

	switch t {
	case Start:
		if g.hasStart {
			g.cells[g.index(g.start)] = Blank
		}
		g.start, g.hasStart = c, true
	case Objective:
		if g.hasObjective {
			g.cells[g.index(g.objective)] = Blank
		}
		g.objective, g.hasObjective = c, true
	}
	g.cells[i] = t

	if prev != t {
		switch prev {
		case Start:
			g.hasStart = false
		case Objective:
			g.hasObjective = false
		}
	}
}

// Mark writes a search marking without touching role bookkeeping.
// Cells holding Start or Objective are never overwritten; Mark reports
// whether the write happened.
// Complexity: O(1).
func (g *Grid) Mark(c Coord, t CellType) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)
	if g.cells[i] == Start || g.cells[i] == Objective {
		return false
	}
	g.cells[i] = t

	return true
}

// Clear sets every cell to Blank and drops both roles. Geometry is untouched.
// Complexity: O(W×H).
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
	g.hasStart, g.hasObjective = false, false
}

// ClearMarks reverts every Visited and Solution cell to Blank.
// Complexity: O(W×H).
func (g *Grid) ClearMarks() {
	for i, t := range g.cells {
		if t.Transient() {
			g.cells[i] = Blank
		}
	}
}

// ResetRoles drops both presence flags without touching any cell.
// Used by bulk rewrites (maze generation) that invalidate the designations.
func (g *Grid) ResetRoles() {
	g.hasStart, g.hasObjective = false, false
}

// Fill overwrites every cell with fn(c). Roles are not re-derived; callers
// that may erase the Start or Objective cell should call ResetRoles.
// Complexity: O(W×H).
func (g *Grid) Fill(fn func(c Coord) CellType) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y*g.width+x] = fn(Coord{X: x, Y: y})
		}
	}
}

// Cells calls fn for every cell in row-major order. This is the render query.
func (g *Grid) Cells(fn func(c Coord, t CellType)) {
	for i, t := range g.cells {
		fn(Coord{X: i % g.width, Y: i / g.width}, t)
	}
}

// Count returns how many cells carry tag t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, ct := range g.cells {
		if ct == t {
			n++
		}
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
