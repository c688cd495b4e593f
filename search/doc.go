// Package search runs a single, parameterized best-first search over a
// grid.Grid and records every expansion step into a history.History.
//
// Overview:
//
//   - One engine, two flags. edgeWeighted adds a unit cost per step to the
//     path cost g; heuristicGuided adds the Manhattan distance to the
//     Objective into the priority f. The three classic variants are presets:
//
//     edgeWeighted  heuristicGuided  Variant
//     true          true             A*
//     true          false            Dijkstra
//     false         true             Greedy Best-First
//
//   - Movement is 4-connected; an edge exists to every in-bounds non-Wall
//     neighbor and costs 1 (or 0 when edgeWeighted is false).
//   - Selection takes the open node with the lowest f. When heuristicGuided,
//     ties go to the node closest to the Objective; otherwise ties go to the
//     node that entered the frontier first (any order is valid there).
//     If the Objective is in the open set it is selected immediately.
//
// Outcomes (none of them is an error):
//
//   - StatusFound:   Solution cells mark the interior of the path; the
//     history holds one snapshot per expansion plus a final one.
//   - StatusNoPath:  the frontier emptied; explored cells stay Visited.
//   - StatusSkipped: Start or Objective is not designated; stale markings are
//     cleared and nothing is recorded.
//
// The only error Run returns is ErrCanceled, when a context supplied with
// WithContext is done between two expansions.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell is expanded at most once and
//     each relaxation costs one heap push or fix.
//   - Space: O(V) for the frontier maps plus O(V) per recorded snapshot, so
//     the history is O(V²) in the worst case.
//
// Thread safety: none. Run mutates the grid and history it is given; the
// frontier state lives only for the duration of one call.
package search
