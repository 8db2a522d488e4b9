package world

import (
	"math/rand"
	"testing"
)

func TestResolveMaskBits(t *testing.T) {
	tests := []struct {
		name  string
		walls [][2]int
		want  int
	}{
		{"isolated", nil, 0},
		{"left", [][2]int{{4, 5}}, MaskLeft},
		{"up", [][2]int{{5, 4}}, MaskUp},
		{"right", [][2]int{{6, 5}}, MaskRight},
		{"down", [][2]int{{5, 6}}, MaskDown},
		{"horizontal run", [][2]int{{4, 5}, {6, 5}}, MaskLeft | MaskRight},
		{"corner", [][2]int{{6, 5}, {5, 6}}, MaskRight | MaskDown},
		{"cross", [][2]int{{4, 5}, {5, 4}, {6, 5}, {5, 6}}, 15},
		{"diagonals ignored", [][2]int{{4, 4}, {6, 6}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewRawGrid(1)
			g.Set(5, 5, RawWall)
			for _, w := range tt.walls {
				g.Set(w[0], w[1], RawWall)
			}
			got := Resolve(g).At(5, 5)
			if got != WallTile(tt.want) {
				t.Errorf("resolved code = %d, want %d (mask %d)", got, WallTile(tt.want), tt.want)
			}
		})
	}
}

func TestResolveIndependentOfPosition(t *testing.T) {
	g := NewRawGrid(2)
	pattern := [][2]int{{0, 0}, {-1, 0}, {0, 1}}
	spots := [][2]int{{10, 10}, {70, 40}, {100, 100}}
	for _, s := range spots {
		for _, p := range pattern {
			g.Set(s[0]+p[0], s[1]+p[1], RawWall)
		}
	}

	tiles := Resolve(g)
	want := tiles.At(spots[0][0], spots[0][1])
	for _, s := range spots[1:] {
		if got := tiles.At(s[0], s[1]); got != want {
			t.Errorf("code at %v = %d, want %d", s, got, want)
		}
	}
}

func TestResolveGridEdgeCountsAsOpen(t *testing.T) {
	g := NewRawGrid(1)
	g.Set(0, 0, RawWall)
	g.Set(1, 0, RawWall)

	if got := Resolve(g).At(0, 0); got != WallTile(MaskRight) {
		t.Errorf("corner code = %d, want %d", got, WallTile(MaskRight))
	}
}

func TestResolveLeavesNoRawCodes(t *testing.T) {
	g := carvedGrid(t, 2, 20, 21)
	CutDoors(g, 15, rand.New(rand.NewSource(21)))
	tiles := Resolve(g)

	for y := 0; y < tiles.Side(); y++ {
		for x := 0; x < tiles.Side(); x++ {
			code := tiles.At(x, y)
			if code != TileOpen && !code.IsWallTile() {
				t.Fatalf("cell (%d,%d) = %d, want open or a wall tile", x, y, code)
			}
			if (code != TileOpen) != g.At(x, y).IsWall() {
				t.Fatalf("cell (%d,%d) wall state changed during resolution", x, y)
			}
		}
	}
}
