package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects meaningless geometry.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		geo  grid.Geometry
		err  error
	}{
		{"ZeroCell", grid.Geometry{CellWidth: 0, ViewportWidth: 10, ViewportHeight: 10}, grid.ErrBadCellWidth},
		{"NegativeOffset", grid.Geometry{CellWidth: 1, TopOffset: -1, ViewportWidth: 10, ViewportHeight: 10}, grid.ErrBadOffset},
		{"ZeroViewport", grid.Geometry{CellWidth: 1, ViewportWidth: 0, ViewportHeight: 10}, grid.ErrBadViewport},
		{"OffsetEatsAll", grid.Geometry{CellWidth: 10, TopOffset: 100, ViewportWidth: 100, ViewportHeight: 105}, grid.ErrEmptyGrid},
		{"CellTooWide", grid.Geometry{CellWidth: 200, ViewportWidth: 100, ViewportHeight: 500}, grid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.NewGrid(tc.geo)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_Dimensions checks floor sizing with the UI offset.
func TestNewGrid_Dimensions(t *testing.T) {
	g, err := grid.NewGrid(grid.Geometry{CellWidth: 50, TopOffset: 100, ViewportWidth: 1600, ViewportHeight: 1000})
	require.NoError(t, err)
	assert.Equal(t, 32, g.Width())
	assert.Equal(t, 18, g.Height())

	g, err = grid.NewGrid(grid.Geometry{CellWidth: 30, TopOffset: 10, ViewportWidth: 100, ViewportHeight: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, g.Width()*g.Height(), g.Count(grid.Blank))
}

//----------------------------------------------------------------------------//
// Set / role transaction
//----------------------------------------------------------------------------//

func TestSet_SingleStartAndObjective(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	g.Set(grid.Coord{X: 0, Y: 0}, grid.Start)
	g.Set(grid.Coord{X: 4, Y: 4}, grid.Objective)
	g.Set(grid.Coord{X: 2, Y: 1}, grid.Start)
	g.Set(grid.Coord{X: 3, Y: 3}, grid.Objective)

	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.Objective))
	assert.Equal(t, grid.Blank, g.At(0, 0), "previous start reverts to Blank")
	assert.Equal(t, grid.Blank, g.At(4, 4), "previous objective reverts to Blank")

	s, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 2, Y: 1}, s)
	o, ok := g.Objective()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 3, Y: 3}, o)
}

func TestSet_OverwriteRoleClearsFlag(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	g.Set(grid.Coord{X: 1, Y: 1}, grid.Start)
	g.Set(grid.Coord{X: 2, Y: 2}, grid.Objective)

	g.Set(grid.Coord{X: 1, Y: 1}, grid.Wall)
	_, ok := g.Start()
	assert.False(t, ok, "walling over the start un-starts it")

	g.Set(grid.Coord{X: 2, Y: 2}, grid.Blank)
	_, ok = g.Objective()
	assert.False(t, ok, "blanking the objective clears it")

	// A fresh start must not revert the wall that replaced the old one.
	g.Set(grid.Coord{X: 0, Y: 0}, grid.Start)
	assert.Equal(t, grid.Wall, g.At(1, 1))
}

func TestSet_StartOverObjective(t *testing.T) {
	g, err := grid.New(3, 1)
	require.NoError(t, err)
	g.Set(grid.Coord{X: 2, Y: 0}, grid.Objective)
	g.Set(grid.Coord{X: 2, Y: 0}, grid.Start)

	_, hasObj := g.Objective()
	s, hasStart := g.Start()
	assert.False(t, hasObj)
	assert.True(t, hasStart)
	assert.Equal(t, grid.Coord{X: 2, Y: 0}, s)
	assert.Equal(t, 0, g.Count(grid.Objective))
}

func TestSet_Idempotent(t *testing.T) {
	cells := []struct {
		c grid.Coord
		t grid.CellType
	}{
		{grid.Coord{X: 1, Y: 2}, grid.Wall},
		{grid.Coord{X: 0, Y: 0}, grid.Start},
		{grid.Coord{X: 3, Y: 3}, grid.Objective},
		{grid.Coord{X: 2, Y: 2}, grid.Blank},
	}
	for _, tc := range cells {
		t.Run(tc.t.String(), func(t *testing.T) {
			once, _ := grid.New(4, 4)
			twice, _ := grid.New(4, 4)
			once.Set(tc.c, tc.t)
			twice.Set(tc.c, tc.t)
			twice.Set(tc.c, tc.t)

			assert.True(t, once.Snapshot().Equal(twice.Snapshot()))
			s1, ok1 := once.Start()
			s2, ok2 := twice.Start()
			assert.Equal(t, s1, s2)
			assert.Equal(t, ok1, ok2)
			o1, ok1 := once.Objective()
			o2, ok2 := twice.Objective()
			assert.Equal(t, o1, o2)
			assert.Equal(t, ok1, ok2)
		})
	}
}

func TestSet_ClampsOutOfRange(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	g.Set(grid.Coord{X: -5, Y: 99}, grid.Wall)
	assert.Equal(t, grid.Wall, g.At(0, 2))
	assert.Equal(t, grid.Wall, g.Classify(grid.Coord{X: -1, Y: 100}))
}

//----------------------------------------------------------------------------//
// Clear / marks
//----------------------------------------------------------------------------//

func TestClear(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)
	g.Set(grid.Coord{X: 0, Y: 0}, grid.Start)
	g.Set(grid.Coord{X: 3, Y: 2}, grid.Objective)
	g.Set(grid.Coord{X: 1, Y: 1}, grid.Wall)
	g.Mark(grid.Coord{X: 2, Y: 1}, grid.Visited)

	g.Clear()

	assert.Equal(t, 12, g.Count(grid.Blank))
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.Objective()
	assert.False(t, ok)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
}

func TestMark_ProtectsRoles(t *testing.T) {
	g, err := grid.New(3, 1)
	require.NoError(t, err)
	g.Set(grid.Coord{X: 0, Y: 0}, grid.Start)
	g.Set(grid.Coord{X: 2, Y: 0}, grid.Objective)

	assert.False(t, g.Mark(grid.Coord{X: 0, Y: 0}, grid.Visited))
	assert.False(t, g.Mark(grid.Coord{X: 2, Y: 0}, grid.Solution))
	assert.False(t, g.Mark(grid.Coord{X: 5, Y: 0}, grid.Visited))
	assert.True(t, g.Mark(grid.Coord{X: 1, Y: 0}, grid.Solution))
	assert.Equal(t, grid.Start, g.At(0, 0))
	assert.Equal(t, grid.Solution, g.At(1, 0))

	g.ClearMarks()
	assert.Equal(t, grid.Blank, g.At(1, 0))
	assert.Equal(t, grid.Start, g.At(0, 0))
	assert.Equal(t, grid.Objective, g.At(2, 0))
}

func TestCells_RowMajor(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.Set(grid.Coord{X: 1, Y: 0}, grid.Wall)

	var got []grid.Coord
	var walls int
	g.Cells(func(c grid.Coord, ct grid.CellType) {
		got = append(got, c)
		if ct == grid.Wall {
			walls++
			assert.Equal(t, grid.Coord{X: 1, Y: 0}, c)
		}
	})
	assert.Equal(t, []grid.Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)
	assert.Equal(t, 1, walls)
}

func TestCellType_StringAndColor(t *testing.T) {
	assert.Equal(t, "Objective", grid.Objective.String())
	assert.Equal(t, "CellType(42)", grid.CellType(42).String())
	assert.Equal(t, uint8(0xff), grid.Blank.Color().R)
	assert.Equal(t, uint8(0x00), grid.Wall.Color().R)
	assert.NotEqual(t, grid.Visited.Color(), grid.Solution.Color())
	assert.True(t, grid.Visited.Transient())
	assert.False(t, grid.Start.Transient())
}
