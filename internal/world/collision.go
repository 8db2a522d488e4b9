package world

const (
	// probeStrictness is how far ahead of the body the clearance probes sit.
	probeStrictness = 5
	// bodyRadius is the push-out sampling distance around the body.
	bodyRadius = 8
)

// Vec2 is a continuous chunk-local position in pixels.
type Vec2 struct {
	X, Y float64
}

// Intent is the requested movement direction for one frame. Components are
// read by sign only.
type Intent struct {
	X, Y float64
}

// Clearance records which directions are free to move in.
type Clearance struct {
	Up, Down, Left, Right bool
}

// cell converts a pixel coordinate to a cell index, truncating toward zero.
func cell(v float64) int {
	return int(v) / TileSize
}

func (c *Chunk) solidAt(px, py float64, solid TileCode) bool {
	return c.At(cell(px), cell(py)).IsSolid(solid)
}

// Probe samples two cells on each side of pos to decide which directions are
// currently open.
func Probe(c *Chunk, pos Vec2, solid TileCode) Clearance {
	const s = probeStrictness
	x, y := pos.X, pos.Y
	return Clearance{
		Up:    !c.solidAt(x+s-1, y-s, solid) && !c.solidAt(x-s+1, y-s, solid),
		Down:  !c.solidAt(x+s-1, y+s, solid) && !c.solidAt(x-s+1, y+s, solid),
		Left:  !c.solidAt(x-s, y+s-1, solid) && !c.solidAt(x-s, y-s+1, solid),
		Right: !c.solidAt(x+s, y+s-1, solid) && !c.solidAt(x+s, y-s+1, solid),
	}
}

// MoveWithCollision moves pos by step along each permitted intent direction,
// then pushes the body out of any wall it overlaps by snapping the affected
// axis to the centre of the cell it started in. Large steps can tunnel
// through thin walls.
func MoveWithCollision(c *Chunk, pos Vec2, intent Intent, step float64, solid TileCode) Vec2 {
	open := Probe(c, pos, solid)
	startX, startY := cell(pos.X), cell(pos.Y)

	if intent.Y < 0 && open.Up {
		pos.Y -= step
	}
	if intent.Y > 0 && open.Down {
		pos.Y += step
	}
	if intent.X < 0 && open.Left {
		pos.X -= step
	}
	if intent.X > 0 && open.Right {
		pos.X += step
	}

	return pushOut(c, pos, startX, startY, solid)
}

func pushOut(c *Chunk, pos Vec2, startX, startY int, solid TileCode) Vec2 {
	const s, r = probeStrictness, bodyRadius
	centre := func(i int) float64 { return float64(i*TileSize + TileSize/2) }

	if c.solidAt(pos.X+s, pos.Y-r, solid) || c.solidAt(pos.X-s, pos.Y-r, solid) {
		pos.Y = centre(startY)
	}
	if c.solidAt(pos.X+s, pos.Y+r, solid) || c.solidAt(pos.X-s, pos.Y+r, solid) {
		pos.Y = centre(startY)
	}
	if c.solidAt(pos.X-r, pos.Y+s, solid) || c.solidAt(pos.X-r, pos.Y-s, solid) {
		pos.X = centre(startX)
	}
	if c.solidAt(pos.X+r, pos.Y+s, solid) || c.solidAt(pos.X+r, pos.Y-s, solid) {
		pos.X = centre(startX)
	}
	return pos
}
