// Package gridpath is an interactive grid pathfinding sandbox: paint walls,
// a start and an objective, run A*, Dijkstra or Greedy Best-First, then scrub
// through the search frame by frame.
//
// Layout:
//
//	grid/         cell tags, the Grid state container, pointer mapping, snapshots
//	maze/         i.i.d. wall-noise generator with seedable RNG
//	search/       one parameterized best-first engine, three named presets
//	history/      snapshot arena with a cyclic cursor
//	session/      one method per user action, logging via logrus
//	config/       YAML settings (window, cell size, UI band, FPS)
//	cmd/gridpath  ebiten window driving a session
//
// Quick ASCII example (S start, O objective, # wall, * path):
//
//	S**
//	.#*
//	..O
//
// The core packages (grid, maze, search, history) are deterministic,
// single-threaded and never draw; rendering and input polling live in
// cmd/gridpath.
package gridpath
