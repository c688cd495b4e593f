package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

func TestClassify(t *testing.T) {
	want := []grid.CellType{grid.Wall, grid.Wall, grid.Blank, grid.Blank, grid.Blank}
	for draw, w := range want {
		assert.Equal(t, w, maze.Classify(draw), "draw %d", draw)
	}
}

// TestGenerate_MatchesDraws replays the same seed and checks each cell follows
// the 40/60 mapping of its own draw, in row-major order.
func TestGenerate_MatchesDraws(t *testing.T) {
	g, err := grid.New(10, 10)
	require.NoError(t, err)
	maze.Generate(g, maze.WithSeed(7))

	replay := rand.New(rand.NewSource(7))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, maze.Classify(replay.Intn(5)), g.At(x, y), "cell %d,%d", x, y)
		}
	}
	assert.Equal(t, 100, g.Count(grid.Wall)+g.Count(grid.Blank))
}

func TestGenerate_ClearsRolesAndChanges(t *testing.T) {
	g, err := grid.New(10, 10)
	require.NoError(t, err)
	g.Set(grid.Coord{X: 0, Y: 0}, grid.Start)
	g.Set(grid.Coord{X: 9, Y: 9}, grid.Objective)

	r := rand.New(rand.NewSource(42))
	maze.Generate(g, maze.WithRand(r))
	first := g.Snapshot()
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.Objective()
	assert.False(t, ok)
	assert.Equal(t, 0, g.Count(grid.Start))
	assert.Equal(t, 0, g.Count(grid.Objective))

	maze.Generate(g, maze.WithRand(r))
	assert.False(t, first.Equal(g.Snapshot()), "a second draw from the same stream changes the pattern")
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := grid.New(12, 8)
	b, _ := grid.New(12, 8)
	maze.Generate(a, maze.WithSeed(99))
	maze.Generate(b, maze.WithSeed(99))
	assert.True(t, a.Snapshot().Equal(b.Snapshot()))
}

func TestGenerate_Density(t *testing.T) {
	g, err := grid.New(100, 100)
	require.NoError(t, err)
	maze.Generate(g, maze.WithSeed(1))
	assert.InDelta(t, 0.4, maze.Density(g), 0.03)
}

func TestGenerate_DefaultSource(t *testing.T) {
	g, _ := grid.New(5, 5)
	maze.Generate(g)
	assert.Equal(t, 25, g.Count(grid.Wall)+g.Count(grid.Blank))
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { maze.WithRand(nil) })
}
