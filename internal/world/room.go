package world

import "math/rand"

const (
	// roomGrid is the number of coarse positions a room corner can take.
	roomGrid = 22
	// roomStep scales coarse positions to cells, leaving door-sized gaps
	// between room edges.
	roomStep = 3
)

// Room is a rectangle outline in chunk-local cells. Edges are inclusive.
type Room struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRoom builds a room from two corners in any order.
func NewRoom(ax, ay, bx, by int) Room {
	if ax > bx {
		ax, bx = bx, ax
	}
	if ay > by {
		ay, by = by, ay
	}
	return Room{X1: ax, Y1: ay, X2: bx, Y2: by}
}

// RandomRoom picks two corners on the coarse room grid.
func RandomRoom(rng *rand.Rand) Room {
	return NewRoom(
		rng.Intn(roomGrid)*roomStep, rng.Intn(roomGrid)*roomStep,
		rng.Intn(roomGrid)*roomStep, rng.Intn(roomGrid)*roomStep,
	)
}

// Width returns the number of columns the outline spans.
func (r Room) Width() int {
	return r.X2 - r.X1 + 1
}

// Height returns the number of rows the outline spans.
func (r Room) Height() int {
	return r.Y2 - r.Y1 + 1
}

// Stamp writes the room outline into chunk c of the grid.
// Degenerate rooms produce a line or a single cell.
func (r Room) Stamp(g *RawGrid, c ChunkCoord) {
	ox, oy := c.X*ChunkCells, c.Y*ChunkCells
	for x := r.X1; x <= r.X2; x++ {
		g.Set(ox+x, oy+r.Y1, RawWall)
		g.Set(ox+x, oy+r.Y2, RawWall)
	}
	for y := r.Y1; y <= r.Y2; y++ {
		g.Set(ox+r.X1, oy+y, RawWall)
		g.Set(ox+r.X2, oy+y, RawWall)
	}
}

// chunkPerimeter is the outline along a chunk's four edges.
var chunkPerimeter = Room{X1: 0, Y1: 0, X2: ChunkCells - 1, Y2: ChunkCells - 1}

// CarveRooms stamps every chunk's perimeter and density random room
// outlines. It returns the number of rooms stamped.
func CarveRooms(g *RawGrid, density int, rng *rand.Rand) int {
	rooms := 0
	for cy := 0; cy < g.MapSize(); cy++ {
		for cx := 0; cx < g.MapSize(); cx++ {
			c := ChunkCoord{X: cx, Y: cy}
			chunkPerimeter.Stamp(g, c)
			for i := 0; i < density; i++ {
				RandomRoom(rng).Stamp(g, c)
				rooms++
			}
		}
	}
	return rooms
}
