package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrCanceled indicates the run stopped because its context was done.
// Markings and snapshots produced before the stop are kept.
var ErrCanceled = errors.New("search: run canceled")

// Variant names a combination of the two engine flags.
type Variant int

const (
	// VariantAStar: edgeWeighted=true, heuristicGuided=true.
	VariantAStar Variant = iota
	// VariantDijkstra: edgeWeighted=true, heuristicGuided=false.
	VariantDijkstra
	// VariantGreedy: edgeWeighted=false, heuristicGuided=true.
	VariantGreedy
	// VariantUninformed: both flags false; every frontier node ties.
	VariantUninformed
)

// VariantOf returns the Variant for a pair of flags.
func VariantOf(edgeWeighted, heuristicGuided bool) Variant {
	switch {
	case edgeWeighted && heuristicGuided:
		return VariantAStar
	case edgeWeighted:
		return VariantDijkstra
	case heuristicGuided:
		return VariantGreedy
	default:
		return VariantUninformed
	}
}

// Flags returns the engine flags realizing v.
func (v Variant) Flags() (edgeWeighted, heuristicGuided bool) {
	switch v {
	case VariantAStar:
		return true, true
	case VariantDijkstra:
		return true, false
	case VariantGreedy:
		return false, true
	default:
		return false, false
	}
}

// String returns the display name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantAStar:
		return "A*"
	case VariantDijkstra:
		return "Dijkstra"
	case VariantGreedy:
		return "Greedy"
	case VariantUninformed:
		return "Uninformed"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Status is the terminal state of a run.
type Status int

const (
	// StatusSkipped: Start or Objective missing, nothing ran.
	StatusSkipped Status = iota
	// StatusFound: the Objective was reached.
	StatusFound
	// StatusNoPath: the frontier emptied first.
	StatusNoPath
	// StatusCanceled: the context was done mid-run.
	StatusCanceled
)

// String returns a lower-case label for logs and the HUD.
func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no path"
	case StatusCanceled:
		return "canceled"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result summarizes one run.
//
//   - Path:     Start..Objective inclusive when Found, nil otherwise.
//   - Expanded: nodes moved to the closed set.
//   - Frames:   snapshots recorded into the history.
type Result struct {
	Status   Status
	Variant  Variant
	Path     []grid.Coord
	Expanded int
	Frames   int
}

// Found reports whether the Objective was reached.
func (r Result) Found() bool { return r.Status == StatusFound }

// Length returns the path length in steps (0 when not found).
func (r Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Options configures a run.
type Options struct {
	// Ctx is checked once per expansion.
	Ctx context.Context
	// OnExpand is called after a node is closed and its neighbors relaxed,
	// with the node and the 1-based expansion count.
	OnExpand func(c grid.Coord, step int)
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(grid.Coord, int) {},
	}
}

// WithContext enables cooperative cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a per-expansion hook. A nil fn is ignored.
func WithOnExpand(fn func(c grid.Coord, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
