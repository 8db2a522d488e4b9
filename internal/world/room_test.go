package world

import (
	"math/rand"
	"testing"
)

func TestNewRoomNormalizesCorners(t *testing.T) {
	r := NewRoom(30, 9, 3, 27)
	want := Room{X1: 3, Y1: 9, X2: 30, Y2: 27}
	if r != want {
		t.Errorf("NewRoom(30, 9, 3, 27) = %+v, want %+v", r, want)
	}
	if r.Width() != 28 || r.Height() != 19 {
		t.Errorf("size = %dx%d, want 28x19", r.Width(), r.Height())
	}
}

func TestRandomRoomCornersOnCoarseGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		r := RandomRoom(rng)
		for _, v := range []int{r.X1, r.Y1, r.X2, r.Y2} {
			if v%roomStep != 0 || v < 0 || v >= ChunkCells {
				t.Fatalf("room %+v has corner %d off the coarse grid", r, v)
			}
		}
		if r.X1 > r.X2 || r.Y1 > r.Y2 {
			t.Fatalf("room %+v is not normalized", r)
		}
	}
}

func TestStampDrawsOutlineOnly(t *testing.T) {
	g := NewRawGrid(2)
	c := ChunkCoord{X: 1, Y: 0}
	NewRoom(3, 6, 9, 12).Stamp(g, c)

	ox := ChunkCells
	if g.At(ox+3, 6) != RawWall || g.At(ox+9, 12) != RawWall || g.At(ox+6, 6) != RawWall {
		t.Error("room edge not stamped")
	}
	if g.At(ox+6, 9) != RawOpen {
		t.Error("room interior was filled")
	}
	if g.At(3, 6) != RawOpen {
		t.Error("room stamped into the wrong chunk")
	}
}

func TestStampDegenerateRoom(t *testing.T) {
	g := NewRawGrid(1)
	NewRoom(6, 6, 6, 6).Stamp(g, ChunkCoord{})
	NewRoom(12, 3, 12, 9).Stamp(g, ChunkCoord{})

	walls := 0
	for _, c := range g.cells {
		if c.IsWall() {
			walls++
		}
	}
	if walls != 1+7 {
		t.Errorf("degenerate rooms stamped %d cells, want 8", walls)
	}
}

func TestCarveRoomsStampsChunkPerimeters(t *testing.T) {
	g := NewRawGrid(3)
	rooms := CarveRooms(g, 4, rand.New(rand.NewSource(1)))
	if rooms != 3*3*4 {
		t.Errorf("CarveRooms() = %d rooms, want %d", rooms, 36)
	}

	for cy := 0; cy < 3; cy++ {
		for cx := 0; cx < 3; cx++ {
			ox, oy := cx*ChunkCells, cy*ChunkCells
			for i := 0; i < ChunkCells; i++ {
				for _, p := range [][2]int{
					{ox + i, oy}, {ox + i, oy + ChunkCells - 1},
					{ox, oy + i}, {ox + ChunkCells - 1, oy + i},
				} {
					if !g.At(p[0], p[1]).IsWall() {
						t.Fatalf("chunk (%d,%d) perimeter open at %v", cx, cy, p)
					}
				}
			}
		}
	}
}
