// Package session is the action surface between an input layer and the
// search core. It owns one Grid and one History and exposes one method per
// user action: paint, erase, run a variant, clear, generate a maze and step
// through recorded frames.
//
// A Session is not safe for concurrent use; one frame loop drives it.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/history"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// Session binds a Grid and its History to the user actions.
type Session struct {
	grid *grid.Grid
	hist *history.History
	rng  *rand.Rand
	log  *logrus.Logger
	last search.Result
	ran  bool
}

// Option customizes New.
type Option func(*Session)

// WithLogger routes action logs to l. Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) {
		s.log = l
	}
}

// WithSeed fixes the maze generator's random stream.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// New builds a session whose grid is sized from cfg.
func New(cfg config.Settings, opts ...Option) (*Session, error) {
	g, err := grid.NewGrid(cfg.Geometry())
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{grid: g, hist: history.New()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = logrus.New()
		s.log.SetOutput(io.Discard)
	}
	s.log.WithFields(logrus.Fields{
		"cols": g.Width(),
		"rows": g.Height(),
	}).Debug("session created")

	return s, nil
}

// Grid returns the live grid for rendering.
func (s *Session) Grid() *grid.Grid { return s.grid }

// History returns the recorded frames of the last run.
func (s *Session) History() *history.History { return s.hist }

// Last returns the result of the most recent run; false before any run.
func (s *Session) Last() (search.Result, bool) { return s.last, s.ran }

// PaintPrimary paints a Wall (primary pointer button).
func (s *Session) PaintPrimary(px, py float64) bool { return s.paint(px, py, grid.Wall) }

// PaintSecondary designates the Objective (secondary pointer button).
func (s *Session) PaintSecondary(px, py float64) bool { return s.paint(px, py, grid.Objective) }

// PaintTertiary designates the Start (tertiary pointer button).
func (s *Session) PaintTertiary(px, py float64) bool { return s.paint(px, py, grid.Start) }

// Erase paints Blank (primary button with the erase modifier held).
func (s *Session) Erase(px, py float64) bool { return s.paint(px, py, grid.Blank) }

func (s *Session) paint(px, py float64, t grid.CellType) bool {
	if !s.grid.Paint(px, py, t) {
		return false
	}
	s.log.WithFields(logrus.Fields{
		"cell": s.grid.MapPointer(px, py).String(),
		"type": t.String(),
	}).Debug("paint")
	return true
}

// RunAStar runs A* and returns its result.
func (s *Session) RunAStar() search.Result { return s.run(search.VariantAStar) }

// RunDijkstra runs Dijkstra and returns its result.
func (s *Session) RunDijkstra() search.Result { return s.run(search.VariantDijkstra) }

// RunGreedy runs Greedy Best-First and returns its result.
func (s *Session) RunGreedy() search.Result { return s.run(search.VariantGreedy) }

func (s *Session) run(v search.Variant) search.Result {
	started := time.Now()
	res, err := search.RunVariant(s.grid, s.hist, v)
	if err != nil {
		// Only cancellation errors exist and no context is attached here.
		s.log.WithError(err).WithField("variant", v.String()).Warn("search stopped")
	}
	s.last, s.ran = res, true

	s.log.WithFields(logrus.Fields{
		"variant":  v.String(),
		"status":   res.Status.String(),
		"expanded": res.Expanded,
		"frames":   res.Frames,
		"length":   res.Length(),
		"elapsed":  time.Since(started),
	}).Info("search finished")

	return res
}

// Clear blanks the grid and drops the recorded frames.
func (s *Session) Clear() {
	s.grid.Clear()
	s.hist.Reset()
	s.ran = false
	s.log.Debug("grid cleared")
}

// GenerateMaze fills the grid with wall noise and drops the recorded frames,
// since they no longer match the board.
func (s *Session) GenerateMaze() {
	maze.Generate(s.grid, maze.WithRand(s.rng))
	s.hist.Reset()
	s.ran = false
	s.log.WithField("density", fmt.Sprintf("%.2f", maze.Density(s.grid))).Debug("maze generated")
}

// StepForward shows the next recorded frame, wrapping to the first.
func (s *Session) StepForward() bool { return s.step(s.hist.Next, "forward") }

// StepBackward shows the previous recorded frame, wrapping to the last.
func (s *Session) StepBackward() bool { return s.step(s.hist.Previous, "backward") }

func (s *Session) step(move func(history.Restorer) (bool, error), dir string) bool {
	moved, err := move(s.grid)
	if err != nil {
		s.log.WithError(err).Error("restore frame")
		return false
	}
	if moved {
		s.log.WithFields(logrus.Fields{
			"direction": dir,
			"frame":     s.hist.Cursor(),
		}).Debug("step")
	}
	return moved
}

// Status returns a one-line summary for a heads-up display.
func (s *Session) Status() string {
	if !s.ran {
		start, okS := s.grid.Start()
		goal, okG := s.grid.Objective()
		switch {
		case okS && okG:
			return fmt.Sprintf("start %s  objective %s  [A] A*  [D] Dijkstra  [G] Greedy", start, goal)
		default:
			return "middle click: start  right click: objective  left click: wall"
		}
	}
	line := fmt.Sprintf("%s: %s", s.last.Variant, s.last.Status)
	if s.last.Found() {
		line += fmt.Sprintf("  length %d", s.last.Length())
	}
	if n := s.hist.Len(); n > 0 {
		line += fmt.Sprintf("  expanded %d  frame %d/%d", s.last.Expanded, s.hist.Cursor()+1, n)
	}
	return line
}
