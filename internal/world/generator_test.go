package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestParamsFromTiers(t *testing.T) {
	tests := []struct {
		size, density, doors int
		want                 Params
	}{
		{0, 0, 0, Params{MapSize: 7, Density: 20, DoorFreq: 35}},
		{1, 1, 1, Params{MapSize: 17, Density: 25, DoorFreq: 30}},
		{2, 2, 2, Params{MapSize: 27, Density: 30, DoorFreq: 25}},
		{2, 0, 1, Params{MapSize: 27, Density: 20, DoorFreq: 30}},
	}

	for _, tt := range tests {
		got, err := ParamsFromTiers(tt.size, tt.density, tt.doors)
		if err != nil {
			t.Fatalf("ParamsFromTiers(%d, %d, %d) error: %v", tt.size, tt.density, tt.doors, err)
		}
		if got != tt.want {
			t.Errorf("ParamsFromTiers(%d, %d, %d) = %+v, want %+v", tt.size, tt.density, tt.doors, got, tt.want)
		}
	}
}

func TestParamsFromTiersRejectsOutOfRange(t *testing.T) {
	for _, tiers := range [][3]int{{3, 0, 0}, {0, -1, 0}, {0, 0, 5}} {
		_, err := ParamsFromTiers(tiers[0], tiers[1], tiers[2])
		if !errors.Is(err, ErrInvalidTier) {
			t.Errorf("ParamsFromTiers(%v) error = %v, want ErrInvalidTier", tiers, err)
		}
	}
}

// generate runs every phase in order.
func generate(ctx context.Context, g *Generator) *TileGrid {
	g.BuildWalls(ctx)
	g.CutDoors(ctx)
	return g.Resolve(ctx)
}

func TestGeneratorReproducibility(t *testing.T) {
	p := Params{MapSize: 2, Density: 20, DoorFreq: 15}
	ctx := context.Background()

	g1 := NewGenerator(p, rand.New(rand.NewSource(12345)))
	g2 := NewGenerator(p, rand.New(rand.NewSource(12345)))
	t1 := generate(ctx, g1)
	t2 := generate(ctx, g2)

	if g1.Rooms != g2.Rooms || g1.Doors != g2.Doors {
		t.Fatalf("stats mismatch: %d/%+v != %d/%+v", g1.Rooms, g1.Doors, g2.Rooms, g2.Doors)
	}
	for y := 0; y < t1.Side(); y++ {
		for x := 0; x < t1.Side(); x++ {
			if t1.At(x, y) != t2.At(x, y) {
				t.Fatalf("Tile mismatch at (%d,%d): %d != %d", x, y, t1.At(x, y), t2.At(x, y))
			}
		}
	}
}

func TestGeneratorDifferentSeeds(t *testing.T) {
	p := Params{MapSize: 1, Density: 20, DoorFreq: 15}
	ctx := context.Background()

	t1 := generate(ctx, NewGenerator(p, rand.New(rand.NewSource(12345))))
	t2 := generate(ctx, NewGenerator(p, rand.New(rand.NewSource(54321))))

	for y := 0; y < t1.Side(); y++ {
		for x := 0; x < t1.Side(); x++ {
			if t1.At(x, y) != t2.At(x, y) {
				return
			}
		}
	}
	t.Error("Maps with different seeds should not be identical")
}

func TestGeneratorPhasesInOrder(t *testing.T) {
	ctx := context.Background()
	g := NewGenerator(Params{MapSize: 1, Density: 5, DoorFreq: 100}, rand.New(rand.NewSource(3)))
	if g.Raw() != nil {
		t.Fatal("Raw() before BuildWalls should be nil")
	}

	g.BuildWalls(ctx)
	if g.Raw() == nil || g.Rooms != 5 {
		t.Fatalf("after BuildWalls: raw=%v rooms=%d, want grid and 5 rooms", g.Raw() != nil, g.Rooms)
	}
	if !g.Raw().At(doorOffset(0), 0).IsWall() {
		t.Fatal("perimeter should be solid before doors are cut")
	}

	g.CutDoors(ctx)
	if g.Raw().At(doorOffset(0), 0).IsWall() {
		t.Error("perimeter door slot still walled after CutDoors with doorFreq 100")
	}

	tiles := g.Resolve(ctx)
	if tiles.MapSize() != 1 || tiles.Side() != ChunkCells {
		t.Errorf("resolved grid is %d cells for %d chunks", tiles.Side(), tiles.MapSize())
	}
}

func TestTileGridChunkCopiesLocalCells(t *testing.T) {
	raw := NewRawGrid(2)
	raw.Set(ChunkCells+5, ChunkCells+7, RawWall)
	tiles := Resolve(raw)

	c := tiles.Chunk(ChunkCoord{X: 1, Y: 1})
	if c.Coord != (ChunkCoord{X: 1, Y: 1}) {
		t.Errorf("Coord = %v, want 1,1", c.Coord)
	}
	if c.At(5, 7) != WallTile(0) {
		t.Errorf("At(5, 7) = %d, want %d", c.At(5, 7), WallTile(0))
	}
	if other := tiles.Chunk(ChunkCoord{}); other.At(5, 7) != TileOpen {
		t.Error("wall leaked into chunk 0,0")
	}
}
