package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and restore.
var (
	// ErrBadCellWidth indicates a cell width of zero or less.
	ErrBadCellWidth = errors.New("grid: cell width must be positive")
	// ErrBadOffset indicates a negative top offset.
	ErrBadOffset = errors.New("grid: top offset must be non-negative")
	// ErrBadViewport indicates a viewport with non-positive width or height.
	ErrBadViewport = errors.New("grid: viewport dimensions must be positive")
	// ErrEmptyGrid indicates the geometry yields no column or no row.
	ErrEmptyGrid = errors.New("grid: geometry must yield at least one column and one row")
	// ErrSnapshotShape indicates a snapshot taken from a grid of other dimensions.
	ErrSnapshotShape = errors.New("grid: snapshot dimensions do not match grid")
)

// CellType is the single tag carried by every cell.
type CellType uint8

const (
	// Blank is an empty, traversable cell.
	Blank CellType = iota
	// Wall blocks movement.
	Wall
	// Start is where a search begins. At most one cell holds it.
	Start
	// Objective is the search target. At most one cell holds it.
	Objective
	// Visited marks a cell expanded by the last search run.
	Visited
	// Solution marks an interior cell of the reconstructed path.
	Solution
)

var cellTypeNames = [...]string{
	Blank:     "Blank",
	Wall:      "Wall",
	Start:     "Start",
	Objective: "Objective",
	Visited:   "Visited",
	Solution:  "Solution",
}

// String returns the tag name, or CellType(n) for unknown values.
func (t CellType) String() string {
	if int(t) < len(cellTypeNames) {
		return cellTypeNames[t]
	}
	return fmt.Sprintf("CellType(%d)", uint8(t))
}

// Transient reports whether t is a search marking (Visited or Solution).
func (t CellType) Transient() bool {
	return t == Visited || t == Solution
}

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Geometry describes how the grid is laid out on screen.
// CellWidth and TopOffset are in pixels; the viewport is the full window.
// The band above TopOffset is reserved for UI and is never painted.
type Geometry struct {
	CellWidth      int
	TopOffset      int
	ViewportWidth  float64
	ViewportHeight float64
}

// Validate checks the geometry and returns the grid dimensions it yields:
// cols = floor(ViewportWidth / CellWidth),
// rows = floor((ViewportHeight - TopOffset) / CellWidth).
// Complexity: O(1).
func (geo Geometry) Validate() (cols, rows int, err error) {
	if geo.CellWidth <= 0 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrBadCellWidth, geo.CellWidth)
	}
	if geo.TopOffset < 0 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrBadOffset, geo.TopOffset)
	}
	if !(geo.ViewportWidth > 0) || !(geo.ViewportHeight > 0) {
		return 0, 0, fmt.Errorf("%w: got %gx%g", ErrBadViewport, geo.ViewportWidth, geo.ViewportHeight)
	}
	cw := float64(geo.CellWidth)
	cols = int(geo.ViewportWidth / cw)
	rows = int((geo.ViewportHeight - float64(geo.TopOffset)) / cw)
	if cols < 1 || rows < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, cols, rows)
	}

	return cols, rows, nil
}
