package world

import "testing"

func TestReachableFromSealedRoom(t *testing.T) {
	raw := NewRawGrid(1)
	chunkPerimeter.Stamp(raw, ChunkCoord{})
	NewRoom(9, 9, 15, 15).Stamp(raw, ChunkCoord{})
	tiles := Resolve(raw)

	inner := 5 * 5
	open := 62*62 - (7*7 - inner)

	r := ReachableFrom(tiles, 2, 2)
	if r.Open != open {
		t.Errorf("Open = %d, want %d", r.Open, open)
	}
	if r.Reachable != open-inner {
		t.Errorf("Reachable = %d, want %d", r.Reachable, open-inner)
	}
	if r.Sealed() != inner {
		t.Errorf("Sealed() = %d, want %d", r.Sealed(), inner)
	}
}

func TestReachableFromWallStart(t *testing.T) {
	raw := NewRawGrid(1)
	chunkPerimeter.Stamp(raw, ChunkCoord{})
	r := ReachableFrom(Resolve(raw), 0, 0)
	if r.Reachable != 0 {
		t.Errorf("Reachable = %d, want 0 from a wall cell", r.Reachable)
	}
}

func TestReachableFromChunk(t *testing.T) {
	raw := NewRawGrid(2)
	CarveRooms(raw, 0, nil)
	tiles := Resolve(raw)
	c := tiles.Chunk(ChunkCoord{X: 1, Y: 1})

	// Without doors each chunk is one sealed box; the flood must stay
	// inside it even though Chunk.At reads open past the edge.
	r := ReachableFrom(c, 10, 10)
	if r.Open != 62*62 || r.Reachable != 62*62 {
		t.Errorf("ReachableFrom(chunk) = %+v, want %d open and reachable", r, 62*62)
	}

	whole := ReachableFrom(tiles, 10, 10)
	if whole.Open != 4*62*62 || whole.Reachable != 62*62 {
		t.Errorf("ReachableFrom(world) = %+v, want %d open, %d reachable", whole, 4*62*62, 62*62)
	}
}
