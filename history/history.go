// Package history records the grid snapshots produced by one search run and
// plays them back through a cyclic cursor.
//
// Each snapshot is an immutable deep copy (grid.Snapshot), so the arena never
// needs to "undo" anything: moving the cursor simply restores the snapshot at
// the new position onto the live grid.
//
// Complexity:
//
//   - Record:         O(1) amortized (the snapshot is already copied).
//   - Next, Previous: O(W×H) for the restore.
//   - Reset:          O(1).
package history

import "github.com/katalvlaran/gridpath/grid"

// Restorer receives a snapshot on navigation. *grid.Grid satisfies it.
type Restorer interface {
	Restore(s grid.Snapshot) error
}

// History is an ordered arena of snapshots plus a cursor.
// The zero value is an empty, usable History.
type History struct {
	frames []grid.Snapshot
	cursor int
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Record appends a snapshot and moves the cursor onto it.
func (h *History) Record(s grid.Snapshot) {
	h.frames = append(h.frames, s)
	h.cursor = len(h.frames) - 1
}

// Reset drops every snapshot and rewinds the cursor.
func (h *History) Reset() {
	h.frames = nil
	h.cursor = 0
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int { return len(h.frames) }

// Cursor returns the current index (0 when empty).
func (h *History) Cursor() int { return h.cursor }

// Current returns the snapshot under the cursor; false when empty.
func (h *History) Current() (grid.Snapshot, bool) {
	if len(h.frames) == 0 {
		return grid.Snapshot{}, false
	}
	return h.frames[h.cursor], true
}

// Frame returns the snapshot at index i; false when out of range.
func (h *History) Frame(i int) (grid.Snapshot, bool) {
	if i < 0 || i >= len(h.frames) {
		return grid.Snapshot{}, false
	}
	return h.frames[i], true
}

// SeekLast puts the cursor on the final snapshot without restoring it.
func (h *History) SeekLast() {
	if len(h.frames) > 0 {
		h.cursor = len(h.frames) - 1
	}
}

// Next advances the cursor by one, wrapping past the last index to 0, and
// restores that snapshot onto dst. No-op returning false when empty.
func (h *History) Next(dst Restorer) (bool, error) {
	return h.step(dst, 1)
}

// Previous retreats the cursor by one, wrapping from 0 to the last index, and
// restores that snapshot onto dst. No-op returning false when empty.
func (h *History) Previous(dst Restorer) (bool, error) {
	return h.step(dst, -1)
}

func (h *History) step(dst Restorer, delta int) (bool, error) {
	n := len(h.frames)
	if n == 0 {
		return false, nil
	}
	h.cursor = ((h.cursor+delta)%n + n) % n
	if err := dst.Restore(h.frames[h.cursor]); err != nil {
		return false, err
	}

	return true, nil
}
