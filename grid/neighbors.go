package grid

// conn4 lists orthogonal offsets in N, E, S, W order.
var conn4 = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Passable reports whether c is in bounds and not a Wall.
// Complexity: O(1).
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Wall
}

// Neighbors returns the passable orthogonal neighbors of c in N, E, S, W order.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(conn4))
	for _, d := range conn4 {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coord) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Region returns every passable cell 4-reachable from `from`, including it,
// in BFS order. A Wall or out-of-bounds origin yields nil.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func (g *Grid) Region(from Coord) []Coord {
	if !g.Passable(from) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(from)] = true
	queue := []Coord{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range conn4 {
			v := Coord{X: u.X + d.X, Y: u.Y + d.Y}
			if !g.Passable(v) {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// Reachable reports whether the Objective can be reached from the Start
// through non-Wall cells. False when either role is missing.
func (g *Grid) Reachable() bool {
	if !g.hasStart || !g.hasObjective {
		return false
	}
	for _, c := range g.Region(g.start) {
		if c == g.objective {
			return true
		}
	}
	return false
}
