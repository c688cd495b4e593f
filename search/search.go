package search

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/history"
)

// AStar runs the engine with edgeWeighted=true, heuristicGuided=true.
func AStar(g *grid.Grid, h *history.History, opts ...Option) (Result, error) {
	return Run(g, h, true, true, opts...)
}

// Dijkstra runs the engine with edgeWeighted=true, heuristicGuided=false.
func Dijkstra(g *grid.Grid, h *history.History, opts ...Option) (Result, error) {
	return Run(g, h, true, false, opts...)
}

// Greedy runs the engine with edgeWeighted=false, heuristicGuided=true.
func Greedy(g *grid.Grid, h *history.History, opts ...Option) (Result, error) {
	return Run(g, h, false, true, opts...)
}

// RunVariant runs the engine with the flags of v.
func RunVariant(g *grid.Grid, h *history.History, v Variant, opts ...Option) (Result, error) {
	edgeWeighted, heuristicGuided := v.Flags()
	return Run(g, h, edgeWeighted, heuristicGuided, opts...)
}

// Run executes one best-first search from the grid's Start to its Objective.
//
// Steps:
//  1. Clear Visited/Solution markings and reset the history.
//  2. Missing Start or Objective: return StatusSkipped.
//  3. Seed the open set with Start: g=0, f=heuristic(Start).
//  4. Loop: select (Objective first if open, else lowest f with tie-break);
//     on the Objective reconstruct and mark the path, record a final
//     snapshot and stop; otherwise mark Visited, close, relax neighbors
//     and record a snapshot.
//  5. Frontier exhausted: StatusNoPath.
//  6. Leave the history cursor on the last snapshot.
//
// Run never fails on grid contents. It returns ErrCanceled only when the
// context passed via WithContext is done.
func Run(g *grid.Grid, h *history.History, edgeWeighted, heuristicGuided bool, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res := Result{Variant: VariantOf(edgeWeighted, heuristicGuided)}
	g.ClearMarks()
	h.Reset()

	start, hasStart := g.Start()
	goal, hasGoal := g.Objective()
	if !hasStart || !hasGoal {
		res.Status = StatusSkipped
		return res, nil
	}

	r := &runner{
		g:        g,
		hist:     h,
		cfg:      cfg,
		goal:     goal,
		weighted: edgeWeighted,
		guided:   heuristicGuided,
		open:     frontier{guided: heuristicGuided},
		inOpen:   make(map[grid.Coord]*node),
		closed:   mapset.New[grid.Coord](),
		cameFrom: make(map[grid.Coord]grid.Coord),
		gScore:   make(map[grid.Coord]int),
	}
	err := r.run(start, &res)
	h.SeekLast()
	res.Frames = h.Len()

	return res, err
}

// runner holds the frontier state of a single Run. It never outlives the call.
type runner struct {
	g        *grid.Grid
	hist     *history.History
	cfg      Options
	goal     grid.Coord
	weighted bool
	guided   bool

	open     frontier
	inOpen   map[grid.Coord]*node
	closed   mapset.Set[grid.Coord]
	cameFrom map[grid.Coord]grid.Coord
	gScore   map[grid.Coord]int
	seq      int
}

func (r *runner) run(start grid.Coord, res *Result) error {
	r.gScore[start] = 0
	r.push(start, grid.Manhattan(start, r.goal))

	for r.open.Len() > 0 {
		if err := r.cfg.Ctx.Err(); err != nil {
			res.Status = StatusCanceled
			return fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		cur := r.selectNext()
		if cur == r.goal {
			res.Path = r.reconstruct(start)
			for _, c := range res.Path {
				r.g.Mark(c, grid.Solution)
			}
			r.hist.Record(r.g.Snapshot())
			res.Status = StatusFound
			return nil
		}

		r.g.Mark(cur, grid.Visited)
		r.closed.Put(cur)
		res.Expanded++
		r.relax(cur)
		r.cfg.OnExpand(cur, res.Expanded)
		r.hist.Record(r.g.Snapshot())
	}

	res.Status = StatusNoPath
	return nil
}

// selectNext removes and returns the next node to expand. The Objective wins
// outright whenever it sits in the open set.
func (r *runner) selectNext() grid.Coord {
	var n *node
	if goal, ok := r.inOpen[r.goal]; ok {
		heap.Remove(&r.open, goal.index)
		n = goal
	} else {
		n = heap.Pop(&r.open).(*node)
	}
	delete(r.inOpen, n.coord)

	return n.coord
}

// relax considers every passable, unclosed neighbor of cur.
func (r *runner) relax(cur grid.Coord) {
	step := 0
	if r.weighted {
		step = 1
	}
	tentative := r.gScore[cur] + step

	for _, nb := range r.g.Neighbors(cur) {
		if r.closed.Has(nb) {
			continue
		}
		if old, seen := r.gScore[nb]; seen && tentative >= old {
			continue
		}
		r.cameFrom[nb] = cur
		r.gScore[nb] = tentative
		f := tentative
		if r.guided {
			f += grid.Manhattan(nb, r.goal)
		}

		if n, ok := r.inOpen[nb]; ok {
			n.f = f
			heap.Fix(&r.open, n.index)
		} else {
			r.push(nb, f)
		}
	}
}

func (r *runner) push(c grid.Coord, f int) {
	n := &node{coord: c, f: f, h: grid.Manhattan(c, r.goal), seq: r.seq}
	r.seq++
	heap.Push(&r.open, n)
	r.inOpen[c] = n
}

// reconstruct walks cameFrom back from the Objective and returns the path
// Start..Objective.
func (r *runner) reconstruct(start grid.Coord) []grid.Coord {
	path := []grid.Coord{r.goal}
	for cur := r.goal; cur != start; {
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
