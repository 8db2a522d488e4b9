package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/backrooms/internal/telemetry"
)

// ErrInvalidTier is returned for a generation tier outside {0, 1, 2}.
var ErrInvalidTier = errors.New("generation tier must be 0, 1 or 2")

// Params are the concrete generation parameters.
type Params struct {
	MapSize  int // Chunks per side
	Density  int // Rooms per chunk
	DoorFreq int // Percent chance per door slot
}

// ParamsFromTiers maps the three ordinal settings to concrete parameters.
func ParamsFromTiers(size, density, doors int) (Params, error) {
	for _, t := range []int{size, density, doors} {
		if t < 0 || t > 2 {
			return Params{}, fmt.Errorf("%w: got %d", ErrInvalidTier, t)
		}
	}
	return Params{
		MapSize:  7 + 10*size,
		Density:  20 + 5*density,
		DoorFreq: 35 - 5*doors,
	}, nil
}

// Generator builds a world in three sequential phases: walls, doors and
// resolution. Each phase runs to completion.
type Generator struct {
	Params Params
	Rooms  int
	Doors  DoorStats

	rng *rand.Rand
	raw *RawGrid
}

// NewGenerator creates a generator. A nil rng is seeded from the clock.
func NewGenerator(p Params, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{Params: p, rng: rng}
}

// Raw returns the raw grid built so far, or nil before BuildWalls.
func (g *Generator) Raw() *RawGrid {
	return g.raw
}

// BuildWalls allocates the raw grid and stamps perimeters and rooms.
func (g *Generator) BuildWalls(ctx context.Context) {
	_, span := telemetry.Tracer("world").Start(ctx, "world.walls")
	defer span.End()

	g.raw = NewRawGrid(g.Params.MapSize)
	g.Rooms = CarveRooms(g.raw, g.Params.Density, g.rng)

	span.SetAttributes(
		attribute.Int("world.map_size", g.Params.MapSize),
		attribute.Int("world.rooms", g.Rooms),
	)
}

// CutDoors carves doors into the walls built by BuildWalls.
func (g *Generator) CutDoors(ctx context.Context) {
	_, span := telemetry.Tracer("world").Start(ctx, "world.doors")
	defer span.End()

	g.Doors = CutDoors(g.raw, g.Params.DoorFreq, g.rng)

	span.SetAttributes(
		attribute.Int("world.door_freq", g.Params.DoorFreq),
		attribute.Int("world.door_trials", g.Doors.Trials),
		attribute.Int("world.doors_cut", g.Doors.Total()),
	)
}

// Resolve turns the raw grid into resolved tile codes.
func (g *Generator) Resolve(ctx context.Context) *TileGrid {
	_, span := telemetry.Tracer("world").Start(ctx, "world.resolve")
	defer span.End()

	return Resolve(g.raw)
}
