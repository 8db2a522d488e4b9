package world

import "testing"

func TestWallTileCoversAtlasStrip(t *testing.T) {
	seen := make(map[TileCode]bool)
	for mask := 0; mask < 16; mask++ {
		code := WallTile(mask)
		if !code.IsWallTile() {
			t.Errorf("WallTile(%d) = %d, want a code in [32, 47]", mask, code)
		}
		if seen[code] {
			t.Errorf("WallTile(%d) = %d is shared with another mask", mask, code)
		}
		seen[code] = true

		got, ok := code.WallMask()
		if !ok || got != mask {
			t.Errorf("WallTile(%d).WallMask() = %d, %v, want %d, true", mask, got, ok, mask)
		}
	}
}

func TestSolidThresholdSeparatesOpenFromWalls(t *testing.T) {
	if TileOpen.IsSolid(SolidWallID) {
		t.Errorf("TileOpen is solid under threshold %d", SolidWallID)
	}
	for mask := 0; mask < 16; mask++ {
		if !WallTile(mask).IsSolid(SolidWallID) {
			t.Errorf("WallTile(%d) is not solid under threshold %d", mask, SolidWallID)
		}
	}
}

func TestRawCodeIsWall(t *testing.T) {
	tests := []struct {
		code RawCode
		want bool
	}{
		{RawOpen, false},
		{RawWallThreshold - 1, false},
		{RawWallThreshold, true},
		{RawWall, true},
		{32, true},
	}

	for _, tt := range tests {
		if got := tt.code.IsWall(); got != tt.want {
			t.Errorf("RawCode(%d).IsWall() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCosmetic(t *testing.T) {
	tests := []struct {
		code TileCode
		want TileCode
	}{
		{TileOpen, CosmeticFloor},
		{WallTile(0), WallTile(0) + 16},
		{WallTile(15), WallTile(15) + 16},
	}

	for _, tt := range tests {
		if got := tt.code.Cosmetic(); got != tt.want {
			t.Errorf("TileCode(%d).Cosmetic() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestIsCosmeticWall(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		if !WallTile(mask).Cosmetic().IsCosmeticWall() {
			t.Errorf("cosmetic code of mask %d not a cosmetic wall", mask)
		}
	}
	for _, c := range []TileCode{CosmeticFloor, TileVoid, WallTile(0), WallTile(15) + 17} {
		if c.IsCosmeticWall() {
			t.Errorf("TileCode(%d).IsCosmeticWall() = true", c)
		}
	}
}
