package grid

import "fmt"

// Snapshot is an immutable copy of every cell tag at one moment.
// Later mutations of the Grid never reach a Snapshot.
type Snapshot struct {
	width, height int
	types         []CellType
}

// Snapshot deep-copies the current tag array.
// Complexity: O(W×H) time and memory.
func (g *Grid) Snapshot() Snapshot {
	types := make([]CellType, len(g.cells))
	copy(types, g.cells)

	return Snapshot{width: g.width, height: g.height, types: types}
}

// Restore overwrites every cell tag with the snapshot's, then re-derives the
// Start and Objective roles from the restored tags. The first Start (and
// Objective) found in row-major order wins; none found clears the role.
// Returns ErrSnapshotShape if the dimensions differ.
// Complexity: O(W×H).
func (g *Grid) Restore(s Snapshot) error {
	if s.width != g.width || s.height != g.height || len(s.types) != len(g.cells) {
		return fmt.Errorf("%w: snapshot %dx%d, grid %dx%d",
			ErrSnapshotShape, s.width, s.height, g.width, g.height)
	}
	copy(g.cells, s.types)

	g.hasStart, g.hasObjective = false, false
	for i, t := range g.cells {
		c := Coord{X: i % g.width, Y: i / g.width}
		switch {
		case t == Start && !g.hasStart:
			g.start, g.hasStart = c, true
		case t == Objective && !g.hasObjective:
			g.objective, g.hasObjective = c, true
		}
	}

	return nil
}

// Width returns the number of columns captured.
func (s Snapshot) Width() int { return s.width }

// Height returns the number of rows captured.
func (s Snapshot) Height() int { return s.height }

// At returns the captured tag at (x, y), or Blank when out of range.
func (s Snapshot) At(x, y int) CellType {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Blank
	}
	return s.types[y*s.width+x]
}

// Count returns how many captured cells carry tag t.
func (s Snapshot) Count(t CellType) int {
	n := 0
	for _, ct := range s.types {
		if ct == t {
			n++
		}
	}
	return n
}

// Equal reports whether two snapshots hold identical dimensions and tags.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.width != o.width || s.height != o.height || len(s.types) != len(o.types) {
		return false
	}
	for i := range s.types {
		if s.types[i] != o.types[i] {
			return false
		}
	}
	return true
}
