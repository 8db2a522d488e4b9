// Package world provides maze generation, chunk grids and collision.
package world

// RawCode is a cell value before wall resolution. It only distinguishes
// "wall present" from "open".
type RawCode int

const (
	// RawOpen marks an open cell.
	RawOpen RawCode = 0
	// RawWall marks a wall that has not been resolved to a tile yet.
	RawWall RawCode = 16
	// RawWallThreshold is the lowest raw code counted as a wall neighbour.
	RawWallThreshold RawCode = 15
)

// IsWall reports whether the raw code counts as a wall.
func (c RawCode) IsWall() bool {
	return c >= RawWallThreshold
}

// TileCode is a resolved cell value, used directly as a tile-atlas index.
type TileCode int

const (
	// TileOpen is the resolved code of every open cell.
	TileOpen TileCode = 0
	// TileVoid is reported for cells outside the resident chunk.
	TileVoid TileCode = -1

	// SolidWallID is the collision threshold: codes at or above it are solid.
	// It must stay above TileOpen and at or below the lowest wall tile.
	SolidWallID TileCode = 16

	firstWallTile TileCode = 32
	lastWallTile  TileCode = 47
)

// Neighbour bits used to build a wall mask.
const (
	MaskLeft  = 1
	MaskUp    = 2
	MaskRight = 4
	MaskDown  = 8
)

// wallTiles maps a neighbour mask to its atlas index. The wall strip sits on
// atlas row 2 in mask order so joined segments share edges.
var wallTiles = [16]TileCode{
	32, 33, 34, 35, 36, 37, 38, 39,
	40, 41, 42, 43, 44, 45, 46, 47,
}

// WallTile returns the resolved wall tile for a 4-bit neighbour mask.
func WallTile(mask int) TileCode {
	return wallTiles[mask&0xF]
}

// WallMask returns the neighbour mask a wall tile was resolved from.
// ok is false when the code is not a wall tile.
func (t TileCode) WallMask() (mask int, ok bool) {
	if !t.IsWallTile() {
		return 0, false
	}
	for m, code := range wallTiles {
		if code == t {
			return m, true
		}
	}
	return 0, false
}

// IsWallTile reports whether the code is one of the 16 wall variants.
func (t TileCode) IsWallTile() bool {
	return t >= firstWallTile && t <= lastWallTile
}

// IsSolid reports whether the code blocks movement under the given threshold.
func (t TileCode) IsSolid(solid TileCode) bool {
	return t >= solid
}

// CosmeticFloor is the cosmetic layer filler for open cells.
const CosmeticFloor TileCode = 2

// cosmeticShift moves a wall tile onto the cosmetic strip of the atlas.
const cosmeticShift = 16

// Cosmetic returns the derived render-only code for a resolved cell.
func (t TileCode) Cosmetic() TileCode {
	if t > SolidWallID {
		return t + cosmeticShift
	}
	return CosmeticFloor
}

// IsCosmeticWall reports whether t is a wall code on the cosmetic strip.
func (t TileCode) IsCosmeticWall() bool {
	return t >= firstWallTile+cosmeticShift && t <= lastWallTile+cosmeticShift
}
