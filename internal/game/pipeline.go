package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/backrooms/internal/entity"
	"github.com/samdwyer/backrooms/internal/storage"
	"github.com/samdwyer/backrooms/internal/telemetry"
	"github.com/samdwyer/backrooms/internal/world"
)

// EnemiesPerChunkRow scales the enemy count with the map: a map of n chunks
// per side gets EnemiesPerChunkRow·n enemies.
const EnemiesPerChunkRow = 2

// Phase is a step of world generation.
type Phase int

const (
	PhaseWalls Phase = iota
	PhaseDoors
	PhaseResolve
	PhaseSave
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWalls:
		return "walls"
	case PhaseDoors:
		return "doors"
	case PhaseResolve:
		return "resolve"
	case PhaseSave:
		return "save"
	default:
		return "unknown"
	}
}

// Stats summarises a generated world.
type Stats struct {
	MapSize  int
	Rooms    int
	DoorsCut int
	Chunks   int
	Enemies  int
	Start    world.ChunkCoord // Chunk the player starts in
	StartPos world.Vec2
}

// GenerateWorld builds a new world, replacing whatever store held before.
// Phases run to completion in order and progress, if not nil, is called as
// each one starts. Enemies and a fresh player are saved alongside the map.
func GenerateWorld(ctx context.Context, store storage.Store, p world.Params, rng *rand.Rand, progress func(Phase)) (Stats, error) {
	ctx, span := telemetry.Tracer("world").Start(ctx, "world.generate")
	defer span.End()

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	report := func(ph Phase) {
		if progress != nil {
			progress(ph)
		}
	}
	stats := Stats{MapSize: p.MapSize}

	if err := store.Reset(ctx); err != nil {
		return stats, err
	}

	gen := world.NewGenerator(p, rng)
	report(PhaseWalls)
	gen.BuildWalls(ctx)
	report(PhaseDoors)
	gen.CutDoors(ctx)
	report(PhaseResolve)
	tiles := gen.Resolve(ctx)
	stats.Rooms = gen.Rooms
	stats.DoorsCut = gen.Doors.Total()

	report(PhaseSave)
	chunks, err := saveChunks(ctx, store, tiles)
	stats.Chunks = chunks
	if err != nil {
		return stats, err
	}

	start := world.ChunkCoord{X: p.MapSize / 2, Y: p.MapSize / 2}
	enemies := SpawnEnemies(ctx, tiles, EnemiesPerChunkRow*p.MapSize, start, rng)
	if err := store.SaveEnemies(ctx, enemies); err != nil {
		return stats, err
	}
	stats.Enemies = len(enemies)

	stats.Start, stats.StartPos = start, StartPosition(tiles.Chunk(start))
	if err := store.SavePlayer(ctx, entity.NewPlayer(start, stats.StartPos)); err != nil {
		return stats, err
	}

	span.SetAttributes(
		attribute.Int("world.map_size", stats.MapSize),
		attribute.Int("world.rooms", stats.Rooms),
		attribute.Int("world.doors_cut", stats.DoorsCut),
		attribute.Int("world.chunks", stats.Chunks),
		attribute.Int("world.enemies", stats.Enemies),
	)
	return stats, nil
}

func saveChunks(ctx context.Context, store storage.Store, tiles *world.TileGrid) (int, error) {
	ctx, span := telemetry.Tracer("world").Start(ctx, "world.save")
	defer span.End()

	saved := 0
	for cy := 0; cy < tiles.MapSize(); cy++ {
		for cx := 0; cx < tiles.MapSize(); cx++ {
			if err := store.SaveChunk(ctx, tiles.Chunk(world.ChunkCoord{X: cx, Y: cy})); err != nil {
				span.RecordError(err)
				return saved, err
			}
			saved++
		}
	}
	span.SetAttributes(attribute.Int("world.chunks", saved))
	return saved, nil
}

// spawnAttempts bounds the search for a chunk with an open cell.
const spawnAttempts = 64

// SpawnEnemies places count enemies with ids 0..count-1, each in a random
// chunk at the centre of a random open cell. The player's start chunk is
// avoided when the map has any other.
func SpawnEnemies(ctx context.Context, tiles *world.TileGrid, count int, avoid world.ChunkCoord, rng *rand.Rand) []*entity.Enemy {
	n := tiles.MapSize()
	enemies := make([]*entity.Enemy, 0, count)
	for len(enemies) < count {
		placed := false
		for attempt := 0; attempt < spawnAttempts && !placed; attempt++ {
			coord := world.ChunkCoord{X: rng.Intn(n), Y: rng.Intn(n)}
			if coord == avoid && n > 1 {
				continue
			}
			open := tiles.Chunk(coord).OpenCells()
			if len(open) == 0 {
				continue
			}
			cell := open[rng.Intn(len(open))]
			enemies = append(enemies, entity.NewEnemy(len(enemies), coord, cellCentre(cell[0], cell[1])))
			placed = true
		}
		if !placed {
			telemetry.Warn(ctx, "placed %d of %d enemies: no open cells found", len(enemies), count)
			break
		}
	}
	return enemies
}

// StartPosition finds a standing spot near the centre of c, stepping
// diagonally one cell at a time until the cell is open.
func StartPosition(c *world.Chunk) world.Vec2 {
	for i := world.ChunkCells / 2; i < world.ChunkCells; i++ {
		if !c.At(i, i).IsSolid(world.SolidWallID) {
			return cellCentre(i, i)
		}
	}
	if open := c.OpenCells(); len(open) > 0 {
		return cellCentre(open[0][0], open[0][1])
	}
	return cellCentre(world.ChunkCells/2, world.ChunkCells/2)
}

func cellCentre(x, y int) world.Vec2 {
	return world.Vec2{
		X: float64(x*world.TileSize + world.TileSize/2),
		Y: float64(y*world.TileSize + world.TileSize/2),
	}
}

// ParamsFromConfig maps the configured tiers to generation parameters.
func ParamsFromConfig(cfg Config) (world.Params, error) {
	p, err := world.ParamsFromTiers(cfg.SizeTier, cfg.DensityTier, cfg.DoorTier)
	if err != nil {
		return p, fmt.Errorf("invalid generation settings: %w", err)
	}
	return p, nil
}
