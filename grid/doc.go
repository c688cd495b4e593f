// Package grid models the paintable pathfinding board: a fixed-size
// rectangle of cells, each carrying exactly one CellType tag, plus the
// designated Start and Objective locations.
//
// What:
//
//   - Grid owns the cell array (row-major) and the Start/Objective roles.
//   - Set and Paint enforce the role transaction: at most one Start and at
//     most one Objective exist at any time.
//   - MapPointer converts a pointer position into a clamped cell index.
//   - Snapshot/Restore capture and replay the full tag array by value.
//   - Neighbors and Region expose 4-connected adjacency over non-Wall cells.
//
// Why:
//
//   - A single tag per cell keeps "exactly one role" checkable in one place;
//     there are no per-cell boolean flags that can drift apart.
//   - Out-of-range input is clamped, never surfaced, so a frontend can feed
//     raw pointer coordinates straight in.
//
// Complexity:
//
//   - Set, Classify, MapPointer:   O(1).
//   - Clear, ClearMarks, Snapshot: O(W×H).
//   - Region:                      O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrBadCellWidth:  cell width must be positive.
//   - ErrBadOffset:     top offset must be non-negative.
//   - ErrBadViewport:   viewport width/height must be positive.
//   - ErrEmptyGrid:     geometry leaves no full column or row.
//   - ErrSnapshotShape: snapshot dimensions differ from the grid.
//
// Grid is not safe for concurrent use; one session owns one Grid.
package grid
