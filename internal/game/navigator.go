package game

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/backrooms/internal/entity"
	"github.com/samdwyer/backrooms/internal/storage"
	"github.com/samdwyer/backrooms/internal/telemetry"
	"github.com/samdwyer/backrooms/internal/world"
)

// Chunk seam geometry, in chunk-local pixels. A player at or past an edge
// enters the neighbouring chunk one pixel inside its opposite edge, and the
// camera shifts by seamShift so the view does not jump.
const (
	edgeLow   = 8
	edgeHigh  = world.ChunkPixels - 8
	entryLow  = edgeLow + 1
	entryHigh = edgeHigh - 1
	seamShift = entryHigh
)

// Outcome is the result of a navigator tick.
type Outcome int

const (
	// OutcomeNone means the player stayed in the resident chunk.
	OutcomeNone Outcome = iota
	// OutcomeCrossed means a neighbouring chunk was loaded.
	OutcomeCrossed
	// OutcomeExit means the player walked off the edge of the map.
	OutcomeExit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCrossed:
		return "crossed"
	case OutcomeExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Navigator owns the single resident chunk and swaps it as the player
// crosses chunk seams.
type Navigator struct {
	store    storage.Store
	mapSize  int
	chunk    *world.Chunk
	cosmetic *[world.ChunkCells][world.ChunkCells]world.TileCode
}

// NewNavigator creates a navigator over a mapSize² world. No chunk is
// resident until Load is called.
func NewNavigator(store storage.Store, mapSize int) *Navigator {
	return &Navigator{store: store, mapSize: mapSize}
}

// MapSize returns the number of chunks per side.
func (n *Navigator) MapSize() int {
	return n.mapSize
}

// Chunk returns the resident chunk, or nil before the first Load.
func (n *Navigator) Chunk() *world.Chunk {
	return n.chunk
}

// Cosmetic returns the render-only layer of the resident chunk.
func (n *Navigator) Cosmetic() *[world.ChunkCells][world.ChunkCells]world.TileCode {
	return n.cosmetic
}

// Load replaces the resident chunk with coord. On error the previous chunk
// stays resident.
func (n *Navigator) Load(ctx context.Context, coord world.ChunkCoord) error {
	ctx, span := telemetry.Tracer("navigator").Start(ctx, "chunk.load")
	defer span.End()
	span.SetAttributes(
		attribute.Int("chunk.x", coord.X),
		attribute.Int("chunk.y", coord.Y),
	)

	if !coord.InBounds(n.mapSize) {
		return fmt.Errorf("chunk %s outside %dx%d map", coord, n.mapSize, n.mapSize)
	}
	c, err := n.store.LoadChunk(ctx, coord)
	if err != nil {
		span.RecordError(err)
		return err
	}
	n.chunk = c
	n.cosmetic = c.CosmeticLayer()
	return nil
}

// Tick checks whether the player has reached a chunk seam. Crossing into a
// neighbour loads it and moves the player and camera onto it; crossing the
// outer edge of the map reports OutcomeExit and leaves everything as is.
func (n *Navigator) Tick(ctx context.Context, p *entity.Player) (Outcome, error) {
	pos, cam := p.Pos, p.Camera
	dx := seamStep(&pos.X, &cam.X)
	dy := seamStep(&pos.Y, &cam.Y)
	if dx == 0 && dy == 0 {
		return OutcomeNone, nil
	}

	target := p.Chunk.Add(dx, dy)
	if !target.InBounds(n.mapSize) {
		return OutcomeExit, nil
	}

	ctx, span := telemetry.Tracer("navigator").Start(ctx, "navigator.transition")
	defer span.End()
	span.SetAttributes(
		attribute.String("chunk.from", p.Chunk.String()),
		attribute.String("chunk.to", target.String()),
	)

	if err := n.Load(ctx, target); err != nil {
		return OutcomeNone, fmt.Errorf("failed to enter chunk %s: %w", target, err)
	}
	p.Chunk, p.Pos, p.Camera = target, pos, cam
	return OutcomeCrossed, nil
}

// seamStep moves a position and camera component across a seam and returns
// the chunk step, or 0 when the position is inside the chunk.
func seamStep(pos, cam *float64) int {
	switch {
	case *pos >= edgeHigh:
		*pos = entryLow
		*cam -= seamShift
		return 1
	case *pos <= edgeLow:
		*pos = entryHigh
		*cam += seamShift
		return -1
	default:
		return 0
	}
}

// Viewport returns the rows×cols window of resolved codes whose top-left
// corner is at camera pixel camX, camY. Cells outside the resident chunk
// are TileVoid.
func (n *Navigator) Viewport(camX, camY float64, cols, rows int) [][]world.TileCode {
	return n.window(camX, camY, cols, rows, n.tileAt)
}

// ShadeViewport returns the same window as Viewport read from the cosmetic
// layer.
func (n *Navigator) ShadeViewport(camX, camY float64, cols, rows int) [][]world.TileCode {
	return n.window(camX, camY, cols, rows, n.cosmeticAt)
}

func (n *Navigator) window(camX, camY float64, cols, rows int, at func(x, y int) world.TileCode) [][]world.TileCode {
	ox := int(math.Floor(camX / world.TileSize))
	oy := int(math.Floor(camY / world.TileSize))

	view := make([][]world.TileCode, rows)
	for y := range view {
		row := make([]world.TileCode, cols)
		for x := range row {
			row[x] = at(ox+x, oy+y)
		}
		view[y] = row
	}
	return view
}

func (n *Navigator) tileAt(x, y int) world.TileCode {
	if n.chunk == nil || x < 0 || x >= world.ChunkCells || y < 0 || y >= world.ChunkCells {
		return world.TileVoid
	}
	return n.chunk.Tiles[y][x]
}

func (n *Navigator) cosmeticAt(x, y int) world.TileCode {
	if n.cosmetic == nil || x < 0 || x >= world.ChunkCells || y < 0 || y >= world.ChunkCells {
		return world.TileVoid
	}
	return n.cosmetic[y][x]
}
