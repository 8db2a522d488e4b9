package world

import "testing"

func openChunk() *Chunk {
	return &Chunk{}
}

func TestProbeAllClearInOpenChunk(t *testing.T) {
	c := openChunk()
	got := Probe(c, Vec2{X: 24, Y: 24}, SolidWallID)
	want := Clearance{Up: true, Down: true, Left: true, Right: true}
	if got != want {
		t.Errorf("Probe() = %+v, want %+v", got, want)
	}
}

func TestProbeBlocksSingleDirection(t *testing.T) {
	tests := []struct {
		name string
		pos  Vec2
		wall [2]int
		want Clearance
	}{
		{"up", Vec2{X: 24, Y: 20}, [2]int{1, 0}, Clearance{Down: true, Left: true, Right: true}},
		{"down", Vec2{X: 24, Y: 27}, [2]int{1, 2}, Clearance{Up: true, Left: true, Right: true}},
		{"left", Vec2{X: 20, Y: 24}, [2]int{0, 1}, Clearance{Up: true, Down: true, Right: true}},
		{"right", Vec2{X: 27, Y: 24}, [2]int{2, 1}, Clearance{Up: true, Down: true, Left: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := openChunk()
			all := Probe(c, tt.pos, SolidWallID)
			if all != (Clearance{Up: true, Down: true, Left: true, Right: true}) {
				t.Fatalf("open chunk Probe() = %+v, want all clear", all)
			}

			c.Set(tt.wall[0], tt.wall[1], WallTile(0))
			if got := Probe(c, tt.pos, SolidWallID); got != tt.want {
				t.Errorf("Probe() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProbeIgnoresCodesBelowThreshold(t *testing.T) {
	c := openChunk()
	c.Set(1, 0, SolidWallID-1)
	if got := Probe(c, Vec2{X: 24, Y: 20}, SolidWallID); !got.Up {
		t.Error("code below threshold blocked movement")
	}
}

func TestMoveWithCollisionMovesWhenClear(t *testing.T) {
	c := openChunk()
	got := MoveWithCollision(c, Vec2{X: 200, Y: 200}, Intent{X: 1, Y: -1}, 2.5, SolidWallID)
	want := Vec2{X: 202.5, Y: 197.5}
	if got != want {
		t.Errorf("MoveWithCollision() = %+v, want %+v", got, want)
	}
}

func TestMoveWithCollisionStopsAtWall(t *testing.T) {
	c := openChunk()
	c.Set(2, 1, WallTile(0))

	pos := Vec2{X: 28, Y: 24}
	got := MoveWithCollision(c, pos, Intent{X: 1}, 1, SolidWallID)
	if got.X > pos.X {
		t.Errorf("moved into wall: X = %v, want <= %v", got.X, pos.X)
	}
}

func TestMoveWithCollisionPushesOutOfWall(t *testing.T) {
	c := openChunk()
	c.Set(2, 1, WallTile(0))

	// Starts in cell (1,1) with the probe still clear; a large step lands
	// the body inside the wall and the push-out snaps it back to centre.
	pos := Vec2{X: 26, Y: 24}
	got := MoveWithCollision(c, pos, Intent{X: 1}, 4, SolidWallID)
	if got.X != 24 {
		t.Errorf("X = %v, want 24 (centre of starting cell)", got.X)
	}
	if got.Y != pos.Y {
		t.Errorf("Y = %v, want %v", got.Y, pos.Y)
	}
}
