package world

// Resolve converts the raw grid into resolved tile codes. Each wall cell
// becomes WallTile of its 4-neighbour mask; cells beyond the grid edge count
// as open. The result depends only on the neighbour pattern, never on scan
// order.
func Resolve(g *RawGrid) *TileGrid {
	out := newTileGrid(g.MapSize())
	for y := 0; y < g.Side(); y++ {
		for x := 0; x < g.Side(); x++ {
			if !g.At(x, y).IsWall() {
				out.cells[y*out.side+x] = TileOpen
				continue
			}
			out.cells[y*out.side+x] = WallTile(NeighbourMask(g, x, y))
		}
	}
	return out
}

// NeighbourMask builds the left/up/right/down wall mask of cell x, y.
func NeighbourMask(g *RawGrid, x, y int) int {
	mask := 0
	if g.At(x-1, y).IsWall() {
		mask |= MaskLeft
	}
	if g.At(x, y-1).IsWall() {
		mask |= MaskUp
	}
	if g.At(x+1, y).IsWall() {
		mask |= MaskRight
	}
	if g.At(x, y+1).IsWall() {
		mask |= MaskDown
	}
	return mask
}
