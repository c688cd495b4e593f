package search

import "github.com/katalvlaran/gridpath/grid"

// node is one open-set entry.
type node struct {
	coord grid.Coord
	f     int // priority
	h     int // Manhattan distance to the Objective, for tie-breaks
	seq   int // insertion order
	index int // position in the heap, maintained by Swap
}

// frontier is a min-heap over f. Ties prefer smaller h when guided, then
// earlier insertion. It implements container/heap.Interface.
type frontier struct {
	items  []*node
	guided bool
}

func (q *frontier) Len() int { return len(q.items) }

func (q *frontier) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if q.guided && a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(q.items)
	q.items = append(q.items, n)
}

func (q *frontier) Pop() any {
	old := q.items
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	q.items = old[:last]
	return n
}
