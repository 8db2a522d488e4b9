package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/backrooms/internal/entity"
	"github.com/samdwyer/backrooms/internal/storage"
	"github.com/samdwyer/backrooms/internal/telemetry"
	"github.com/samdwyer/backrooms/internal/world"
)

// ErrNoSavedMap is returned when a session is started on an empty store.
var ErrNoSavedMap = errors.New("no saved map")

// Input is the player's request for one tick.
type Input struct {
	Intent world.Intent
	Sprint bool
}

// Moving reports whether any direction is held.
func (in Input) Moving() bool {
	return in.Intent.X != 0 || in.Intent.Y != 0
}

// Session is one run through a saved world. It owns the navigator, the
// player and every enemy.
type Session struct {
	ID      string
	Player  *entity.Player
	Enemies []*entity.Enemy
	State   State

	store storage.Store
	nav   *Navigator
}

// NewSession resumes the world saved in store. A missing player save
// starts a fresh player in the centre chunk.
func NewSession(ctx context.Context, store storage.Store) (*Session, error) {
	s := &Session{ID: uuid.NewString(), store: store, State: StatePlaying}

	ctx, span := telemetry.Tracer("game").Start(ctx, "session.start")
	defer span.End()

	mapSize, err := storage.DiscoverMapSize(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("failed to discover map size: %w", err)
	}
	if mapSize == 0 {
		return nil, ErrNoSavedMap
	}
	s.nav = NewNavigator(store, mapSize)

	s.Player, err = store.LoadPlayer(ctx)
	if errors.Is(err, storage.ErrNoPlayer) {
		start := world.ChunkCoord{X: mapSize / 2, Y: mapSize / 2}
		if err := s.nav.Load(ctx, start); err != nil {
			return nil, err
		}
		s.Player = entity.NewPlayer(start, StartPosition(s.nav.Chunk()))
	} else if err != nil {
		return nil, err
	}
	if !s.Player.Chunk.InBounds(mapSize) {
		return nil, fmt.Errorf("saved player is in chunk %s outside the %dx%d map", s.Player.Chunk, mapSize, mapSize)
	}

	if err := s.nav.Load(ctx, s.Player.Chunk); err != nil {
		return nil, err
	}
	if s.Enemies, err = store.LoadEnemies(ctx); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("world.map_size", mapSize),
		attribute.Int("session.enemies", len(s.Enemies)),
		attribute.String("player.chunk", s.Player.Chunk.String()),
	)
	return s, nil
}

// Navigator returns the session's chunk navigator.
func (s *Session) Navigator() *Navigator {
	return s.nav
}

// Step advances the simulation by one tick: player movement with
// collision, camera follow, enemy chase and contact damage, then the chunk
// seam check.
func (s *Session) Step(ctx context.Context, in Input, frameScale float64) (Outcome, error) {
	if s.State.Over() {
		return OutcomeNone, nil
	}
	p := s.Player
	chunk := s.nav.Chunk()

	step := p.Speed(in.Sprint && in.Moving(), frameScale)
	p.Pos = world.MoveWithCollision(chunk, p.Pos, in.Intent, step, world.SolidWallID)
	p.FollowCamera(step)

	for _, e := range s.Enemies {
		e.ChasePlayer(p, chunk.Coord, frameScale)
		e.DamagePlayer(p, chunk.Coord)
	}
	if !p.IsAlive() {
		s.State = StateDead
		return OutcomeNone, nil
	}

	outcome, err := s.nav.Tick(ctx, p)
	if err != nil {
		return outcome, err
	}
	if outcome == OutcomeExit {
		s.State = StateWon
	}
	return outcome, nil
}

// Save writes the player and every enemy.
func (s *Session) Save(ctx context.Context) error {
	if err := s.store.SavePlayer(ctx, s.Player); err != nil {
		return err
	}
	return s.store.SaveEnemies(ctx, s.Enemies)
}
