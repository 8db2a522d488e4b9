package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/samdwyer/backrooms/internal/entity"
	"github.com/samdwyer/backrooms/internal/world"
)

// PostgresStore keeps the same text records as FileStore in PostgreSQL rows.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to dsn and creates the schema if needed.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS chunks (
		chunk_x INTEGER NOT NULL,
		chunk_y INTEGER NOT NULL,
		body TEXT NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		PRIMARY KEY (chunk_x, chunk_y)
	);

	CREATE TABLE IF NOT EXISTS enemies (
		id INTEGER PRIMARY KEY,
		body TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS player (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		body TEXT NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Reset removes every saved row.
func (s *PostgresStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `TRUNCATE chunks, enemies, player`); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	return nil
}

// SaveChunk upserts c.
func (s *PostgresStore) SaveChunk(ctx context.Context, c *world.Chunk) error {
	var b strings.Builder
	if err := EncodeTilemap(&b, ChunkTilemap(c)); err != nil {
		return fmt.Errorf("failed to encode chunk %s: %w", c.Coord, err)
	}

	query := `
	INSERT INTO chunks (chunk_x, chunk_y, body) VALUES ($1, $2, $3)
	ON CONFLICT (chunk_x, chunk_y)
	DO UPDATE SET body = $3, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, c.Coord.X, c.Coord.Y, b.String()); err != nil {
		return fmt.Errorf("failed to save chunk %s: %w", c.Coord, err)
	}
	return nil
}

// LoadChunk reads chunk coord.
func (s *PostgresStore) LoadChunk(ctx context.Context, coord world.ChunkCoord) (*world.Chunk, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM chunks WHERE chunk_x = $1 AND chunk_y = $2`, coord.X, coord.Y,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrChunkNotFound, coord)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chunk %s: %w", coord, err)
	}
	return decodeChunk(ctx, strings.NewReader(body), coord)
}

// ChunkExists reports whether chunk coord has a row.
func (s *PostgresStore) ChunkExists(ctx context.Context, coord world.ChunkCoord) (bool, error) {
	var ok bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM chunks WHERE chunk_x = $1 AND chunk_y = $2)`, coord.X, coord.Y,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to probe chunk %s: %w", coord, err)
	}
	return ok, nil
}

// SaveEnemies replaces the enemy table in one transaction.
func (s *PostgresStore) SaveEnemies(ctx context.Context, enemies []*entity.Enemy) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM enemies`); err != nil {
		return fmt.Errorf("failed to clear enemies: %w", err)
	}
	for _, e := range enemies {
		var b strings.Builder
		if err := EncodeEnemy(&b, e); err != nil {
			return fmt.Errorf("failed to encode enemy %d: %w", e.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO enemies (id, body) VALUES ($1, $2)`, e.ID, b.String()); err != nil {
			return fmt.Errorf("failed to save enemy %d: %w", e.ID, err)
		}
	}
	return tx.Commit()
}

// LoadEnemies reads enemies in id order, stopping at the first gap.
func (s *PostgresStore) LoadEnemies(ctx context.Context) ([]*entity.Enemy, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, body FROM enemies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load enemies: %w", err)
	}
	defer rows.Close()

	var enemies []*entity.Enemy
	for rows.Next() {
		var id int
		var body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("failed to scan enemy: %w", err)
		}
		if id != len(enemies) {
			break
		}
		e, warnings, err := DecodeEnemy(strings.NewReader(body), id)
		warnAll(ctx, fmt.Sprintf("enemy %d", id), warnings)
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, e)
	}
	return enemies, rows.Err()
}

// SavePlayer upserts the single player row.
func (s *PostgresStore) SavePlayer(ctx context.Context, p *entity.Player) error {
	var b strings.Builder
	if err := EncodePlayer(&b, p); err != nil {
		return fmt.Errorf("failed to encode player: %w", err)
	}

	query := `
	INSERT INTO player (id, body) VALUES (1, $1)
	ON CONFLICT (id)
	DO UPDATE SET body = $1, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, b.String()); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// LoadPlayer reads the player row, returning ErrNoPlayer if there is none.
func (s *PostgresStore) LoadPlayer(ctx context.Context) (*entity.Player, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM player WHERE id = 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoPlayer
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	p, warnings, err := DecodePlayer(strings.NewReader(body))
	warnAll(ctx, "player", warnings)
	return p, err
}

// HasPlayer reports whether a player row exists.
func (s *PostgresStore) HasPlayer(ctx context.Context) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM player)`).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to probe player: %w", err)
	}
	return ok, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
