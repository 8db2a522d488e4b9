package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/samdwyer/backrooms/internal/entity"
	"github.com/samdwyer/backrooms/internal/telemetry"
	"github.com/samdwyer/backrooms/internal/world"
)

var (
	// ErrChunkNotFound is returned when a chunk has never been saved.
	ErrChunkNotFound = errors.New("chunk not found")
	// ErrNoPlayer is returned by LoadPlayer when no player was saved.
	ErrNoPlayer = errors.New("no saved player")
)

// Store defines the interface for world persistence.
type Store interface {
	SaveChunk(ctx context.Context, c *world.Chunk) error
	LoadChunk(ctx context.Context, coord world.ChunkCoord) (*world.Chunk, error)
	ChunkExists(ctx context.Context, coord world.ChunkCoord) (bool, error)

	// SaveEnemies replaces every saved enemy with the given set.
	SaveEnemies(ctx context.Context, enemies []*entity.Enemy) error
	// LoadEnemies reads enemies by id from 0 upward until one is missing.
	LoadEnemies(ctx context.Context) ([]*entity.Enemy, error)

	SavePlayer(ctx context.Context, p *entity.Player) error
	LoadPlayer(ctx context.Context) (*entity.Player, error)
	HasPlayer(ctx context.Context) (bool, error)

	// Reset removes every saved chunk, enemy and player so a new map
	// replaces the old one wholesale.
	Reset(ctx context.Context) error

	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile     Backend = "file"
	BackendPostgres Backend = "postgres"
)

// Open creates the store for backend. dir is used by the file backend and
// dsn by the postgres backend.
func Open(ctx context.Context, backend Backend, dir, dsn string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir)
	case BackendPostgres:
		return NewPostgresStore(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func warnAll(ctx context.Context, what string, warnings []string) {
	for _, w := range warnings {
		telemetry.Warn(ctx, "%s: %s", what, w)
	}
}
