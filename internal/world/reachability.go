package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachability summarises a flood fill over open cells.
type Reachability struct {
	Open      int // Open cells in the grid
	Reachable int // Open cells connected to the start cell
}

// Sealed returns the number of open cells the start cell cannot reach.
func (r Reachability) Sealed() int {
	return r.Open - r.Reachable
}

// Grid is a square block of resolved cells: the whole world or one chunk.
type Grid interface {
	Side() int
	At(x, y int) TileCode
}

// ReachableFrom flood-fills open cells from cell x, y through 4-neighbour
// steps. It only reports; door cutting never consults it.
func ReachableFrom(g Grid, x, y int) Reachability {
	var r Reachability
	side := g.Side()
	open := func(x, y int) bool {
		return x >= 0 && x < side && y >= 0 && y < side && g.At(x, y) == TileOpen
	}
	for cy := 0; cy < side; cy++ {
		for cx := 0; cx < side; cx++ {
			if g.At(cx, cy) == TileOpen {
				r.Open++
			}
		}
	}
	if !open(x, y) {
		return r
	}

	visited := mapset.New[int]()
	q := queue.New[int]()
	start := y*side + x
	visited.Put(start)
	q.Enqueue(start)

	for !q.Empty() {
		idx := q.Dequeue()
		cx, cy := idx%side, idx/side
		for _, d := range [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
			nx, ny := cx+d[0], cy+d[1]
			if !open(nx, ny) {
				continue
			}
			n := ny*side + nx
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}

	r.Reachable = visited.Size()
	return r
}
