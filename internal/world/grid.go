package world

import "fmt"

const (
	// ChunkCells is the width and height of a chunk in cells.
	ChunkCells = 64
	// TileSize is the size of a cell in pixels.
	TileSize = 16
	// ChunkPixels is the width and height of a chunk in pixels.
	ChunkPixels = ChunkCells * TileSize
)

// ChunkCoord identifies a chunk within the world.
type ChunkCoord struct {
	X, Y int
}

// String returns the coordinate as "x,y".
func (c ChunkCoord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Add returns the coordinate offset by dx, dy.
func (c ChunkCoord) Add(dx, dy int) ChunkCoord {
	return ChunkCoord{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether the coordinate lies within a mapSize² world.
func (c ChunkCoord) InBounds(mapSize int) bool {
	return c.X >= 0 && c.X < mapSize && c.Y >= 0 && c.Y < mapSize
}

// RawGrid is the whole-world grid written by the room carver and door cutter.
type RawGrid struct {
	mapSize int
	side    int
	cells   []RawCode
}

// NewRawGrid creates an all-open grid of (64·mapSize)² cells.
func NewRawGrid(mapSize int) *RawGrid {
	side := mapSize * ChunkCells
	return &RawGrid{
		mapSize: mapSize,
		side:    side,
		cells:   make([]RawCode, side*side),
	}
}

// MapSize returns the number of chunks per side.
func (g *RawGrid) MapSize() int {
	return g.mapSize
}

// Side returns the number of cells per side.
func (g *RawGrid) Side() int {
	return g.side
}

// InBounds reports whether x, y is a cell of the grid.
func (g *RawGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.side && y >= 0 && y < g.side
}

// At returns the code at x, y. Cells outside the grid read as open.
func (g *RawGrid) At(x, y int) RawCode {
	if !g.InBounds(x, y) {
		return RawOpen
	}
	return g.cells[y*g.side+x]
}

// Set writes the code at x, y. Writes outside the grid are dropped.
func (g *RawGrid) Set(x, y int, c RawCode) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.side+x] = c
}

// TileGrid is the whole-world grid after wall resolution.
type TileGrid struct {
	mapSize int
	side    int
	cells   []TileCode
}

func newTileGrid(mapSize int) *TileGrid {
	side := mapSize * ChunkCells
	return &TileGrid{
		mapSize: mapSize,
		side:    side,
		cells:   make([]TileCode, side*side),
	}
}

// MapSize returns the number of chunks per side.
func (g *TileGrid) MapSize() int {
	return g.mapSize
}

// Side returns the number of cells per side.
func (g *TileGrid) Side() int {
	return g.side
}

// At returns the code at x, y, or TileVoid outside the grid.
func (g *TileGrid) At(x, y int) TileCode {
	if x < 0 || x >= g.side || y < 0 || y >= g.side {
		return TileVoid
	}
	return g.cells[y*g.side+x]
}

// Chunk copies one chunk out of the grid.
func (g *TileGrid) Chunk(c ChunkCoord) *Chunk {
	ch := &Chunk{Coord: c}
	ox, oy := c.X*ChunkCells, c.Y*ChunkCells
	for y := 0; y < ChunkCells; y++ {
		copy(ch.Tiles[y][:], g.cells[(oy+y)*g.side+ox:(oy+y)*g.side+ox+ChunkCells])
	}
	return ch
}

// Chunk is one resident 64×64 block of resolved codes, indexed [y][x].
type Chunk struct {
	Coord ChunkCoord
	Tiles [ChunkCells][ChunkCells]TileCode
}

// Side returns the number of cells per side.
func (c *Chunk) Side() int {
	return ChunkCells
}

// At returns the code at local x, y. Cells outside the chunk read as open.
func (c *Chunk) At(x, y int) TileCode {
	if x < 0 || x >= ChunkCells || y < 0 || y >= ChunkCells {
		return TileOpen
	}
	return c.Tiles[y][x]
}

// Set writes the code at local x, y.
func (c *Chunk) Set(x, y int, t TileCode) {
	if x < 0 || x >= ChunkCells || y < 0 || y >= ChunkCells {
		return
	}
	c.Tiles[y][x] = t
}

// CosmeticLayer derives the render-only layer of the chunk.
func (c *Chunk) CosmeticLayer() *[ChunkCells][ChunkCells]TileCode {
	var layer [ChunkCells][ChunkCells]TileCode
	for y := range c.Tiles {
		for x, t := range c.Tiles[y] {
			layer[y][x] = t.Cosmetic()
		}
	}
	return &layer
}

// OpenCells returns the local coordinates of every open cell.
func (c *Chunk) OpenCells() [][2]int {
	var cells [][2]int
	for y := range c.Tiles {
		for x, t := range c.Tiles[y] {
			if t == TileOpen {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}
