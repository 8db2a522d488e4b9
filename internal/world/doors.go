package world

import "math/rand"

const (
	// doorSlots is the number of coarse door positions along a chunk edge.
	doorSlots = 21
	// doorWidth is the number of cells a door removes.
	doorWidth = 2
)

// doorOffset returns the first local cell of door slot k. Slots sit between
// the multiples of roomStep that room corners land on.
func doorOffset(k int) int {
	return k*roomStep + 1
}

// DoorStats counts the outcome of a door-cutting pass.
type DoorStats struct {
	Trials        int
	PerimeterCuts int
	InteriorCuts  int
}

// Total returns the number of segments removed.
func (s DoorStats) Total() int {
	return s.PerimeterCuts + s.InteriorCuts
}

// CutDoors carves 2-cell gaps into chunk perimeters and interior room walls.
// Every candidate slot gets one independent trial that succeeds with
// probability doorFreq/100. Reachability is not verified, so a map may keep
// sealed pockets.
func CutDoors(g *RawGrid, doorFreq int, rng *rand.Rand) DoorStats {
	var stats DoorStats
	cutBoundaries(g, doorFreq, rng, &stats)
	cutPartitions(g, doorFreq, rng, &stats)
	return stats
}

func roll(rng *rand.Rand, doorFreq int) bool {
	return rng.Intn(100) < doorFreq
}

// cutBoundaries handles the double wall between neighbouring chunks and the
// outer map edge. A cut opens both sides of the boundary.
func cutBoundaries(g *RawGrid, doorFreq int, rng *rand.Rand, stats *DoorStats) {
	n := g.MapSize()
	for b := 0; b <= n; b++ {
		for c := 0; c < n; c++ {
			for k := 0; k < doorSlots; k++ {
				stats.Trials++
				if !roll(rng, doorFreq) {
					continue
				}
				along := c*ChunkCells + doorOffset(k)
				for d := 0; d < doorWidth; d++ {
					if b > 0 {
						g.Set(b*ChunkCells-1, along+d, RawOpen)
					}
					if b < n {
						g.Set(b*ChunkCells, along+d, RawOpen)
					}
				}
				stats.PerimeterCuts++
			}
		}
	}

	for b := 0; b <= n; b++ {
		for c := 0; c < n; c++ {
			for k := 0; k < doorSlots; k++ {
				stats.Trials++
				if !roll(rng, doorFreq) {
					continue
				}
				along := c*ChunkCells + doorOffset(k)
				for d := 0; d < doorWidth; d++ {
					if b > 0 {
						g.Set(along+d, b*ChunkCells-1, RawOpen)
					}
					if b < n {
						g.Set(along+d, b*ChunkCells, RawOpen)
					}
				}
				stats.PerimeterCuts++
			}
		}
	}
}

// cutPartitions handles room edges inside each chunk. Horizontal and
// vertical lines are cut independently.
func cutPartitions(g *RawGrid, doorFreq int, rng *rand.Rand, stats *DoorStats) {
	for cy := 0; cy < g.MapSize(); cy++ {
		for cx := 0; cx < g.MapSize(); cx++ {
			ox, oy := cx*ChunkCells, cy*ChunkCells
			for j := 1; j < doorSlots; j++ {
				line := j * roomStep
				for k := 0; k < doorSlots; k++ {
					along := doorOffset(k)
					if cutSegment(g, ox+along, oy+line, 1, 0, doorFreq, rng, stats) {
						stats.InteriorCuts++
					}
					if cutSegment(g, ox+line, oy+along, 0, 1, doorFreq, rng, stats) {
						stats.InteriorCuts++
					}
				}
			}
		}
	}
}

// cutSegment runs one trial on the segment starting at x, y and stepping by
// dx, dy. Segments without any wall are not candidates.
func cutSegment(g *RawGrid, x, y, dx, dy, doorFreq int, rng *rand.Rand, stats *DoorStats) bool {
	wall := false
	for d := 0; d < doorWidth; d++ {
		if g.At(x+d*dx, y+d*dy).IsWall() {
			wall = true
		}
	}
	if !wall {
		return false
	}
	stats.Trials++
	if !roll(rng, doorFreq) {
		return false
	}
	for d := 0; d < doorWidth; d++ {
		g.Set(x+d*dx, y+d*dy, RawOpen)
	}
	return true
}
