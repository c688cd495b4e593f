// Package maze fills a grid with i.i.d. wall noise.
//
// Every cell independently draws a uniform integer in [0,4]: {0,1} become
// Wall (40%), {2,3,4} become Blank (60%). There is no spatial correlation and
// no guarantee that any Start–Objective path exists; this is a noise field,
// not a perfect-maze generator.
//
// Determinism is explicit: pass WithSeed or WithRand to lock the pattern.
// Without either option a time-seeded source is used.
package maze

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

const (
	// drawRange is the number of equally likely outcomes per cell.
	drawRange = 5
	// wallBelow: draws strictly below this value become walls.
	wallBelow = 2
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed draws from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Classify maps a draw in [0,4] to its cell type.
func Classify(draw int) grid.CellType {
	if draw < wallBelow {
		return grid.Wall
	}
	return grid.Blank
}

// Generate reassigns every cell of g to Wall or Blank and clears both the
// Start and Objective designations, since their cells may now be walls.
// Complexity: O(W×H).
func Generate(g *grid.Grid, opts ...Option) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.Fill(func(grid.Coord) grid.CellType {
		return Classify(cfg.rng.Intn(drawRange))
	})
	g.ResetRoles()
}

// Density returns the fraction of Wall cells in g.
func Density(g *grid.Grid) float64 {
	total := g.Width() * g.Height()
	if total == 0 {
		return 0
	}
	return float64(g.Count(grid.Wall)) / float64(total)
}
