package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samdwyer/backrooms/internal/entity"
	"github.com/samdwyer/backrooms/internal/world"
)

const (
	mapDir     = "Map"
	enemyDir   = "Enemies"
	playerFile = "Player.dat"
)

// FileStore keeps one text file per chunk, one per enemy and one for the
// player under a root directory.
type FileStore struct {
	root string
}

// NewFileStore creates a file store rooted at dir, creating its
// subdirectories if needed.
func NewFileStore(dir string) (*FileStore, error) {
	for _, sub := range []string{mapDir, enemyDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create save directory: %w", err)
		}
	}
	return &FileStore{root: dir}, nil
}

// ChunkPath returns the file holding chunk coord.
func (s *FileStore) ChunkPath(coord world.ChunkCoord) string {
	return filepath.Join(s.root, mapDir, fmt.Sprintf("Map_%d_%d", coord.X, coord.Y))
}

func (s *FileStore) enemyPath(id int) string {
	return filepath.Join(s.root, enemyDir, fmt.Sprintf("Enemy_%d", id))
}

func (s *FileStore) playerPath() string {
	return filepath.Join(s.root, playerFile)
}

// writeFile writes through a temporary file so a crash never leaves a
// truncated save behind.
func writeFile(path string, encode func(io.Writer) error) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// SaveChunk writes c to its map file.
func (s *FileStore) SaveChunk(ctx context.Context, c *world.Chunk) error {
	err := writeFile(s.ChunkPath(c.Coord), func(w io.Writer) error {
		return EncodeTilemap(w, ChunkTilemap(c))
	})
	if err != nil {
		return fmt.Errorf("failed to save chunk %s: %w", c.Coord, err)
	}
	return nil
}

// LoadChunk reads chunk coord. Header warnings are logged.
func (s *FileStore) LoadChunk(ctx context.Context, coord world.ChunkCoord) (*world.Chunk, error) {
	f, err := os.Open(s.ChunkPath(coord))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrChunkNotFound, coord)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk %s: %w", coord, err)
	}
	defer f.Close()

	return decodeChunk(ctx, f, coord)
}

func decodeChunk(ctx context.Context, r io.Reader, coord world.ChunkCoord) (*world.Chunk, error) {
	d, err := DecodeTilemap(r)
	warnAll(ctx, "chunk "+coord.String(), d.Warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to load chunk %s: %w", coord, err)
	}
	return d.Tilemap.Chunk(coord)
}

// ChunkExists reports whether chunk coord has a map file.
func (s *FileStore) ChunkExists(ctx context.Context, coord world.ChunkCoord) (bool, error) {
	return exists(s.ChunkPath(coord))
}

// SaveEnemies clears the enemy directory and writes one file per enemy.
func (s *FileStore) SaveEnemies(ctx context.Context, enemies []*entity.Enemy) error {
	dir := filepath.Join(s.root, enemyDir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear enemies: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create enemy directory: %w", err)
	}
	for _, e := range enemies {
		err := writeFile(s.enemyPath(e.ID), func(w io.Writer) error {
			return EncodeEnemy(w, e)
		})
		if err != nil {
			return fmt.Errorf("failed to save enemy %d: %w", e.ID, err)
		}
	}
	return nil
}

// LoadEnemies reads Enemy_0, Enemy_1, ... until a file is missing.
func (s *FileStore) LoadEnemies(ctx context.Context) ([]*entity.Enemy, error) {
	var enemies []*entity.Enemy
	for id := 0; ; id++ {
		f, err := os.Open(s.enemyPath(id))
		if errors.Is(err, os.ErrNotExist) {
			return enemies, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open enemy %d: %w", id, err)
		}
		e, warnings, err := DecodeEnemy(f, id)
		f.Close()
		warnAll(ctx, fmt.Sprintf("enemy %d", id), warnings)
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, e)
	}
}

// SavePlayer writes Player.dat.
func (s *FileStore) SavePlayer(ctx context.Context, p *entity.Player) error {
	err := writeFile(s.playerPath(), func(w io.Writer) error {
		return EncodePlayer(w, p)
	})
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// LoadPlayer reads Player.dat, returning ErrNoPlayer if it is missing.
func (s *FileStore) LoadPlayer(ctx context.Context) (*entity.Player, error) {
	f, err := os.Open(s.playerPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoPlayer
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open player: %w", err)
	}
	defer f.Close()

	p, warnings, err := DecodePlayer(f)
	warnAll(ctx, "player", warnings)
	return p, err
}

// HasPlayer reports whether Player.dat exists.
func (s *FileStore) HasPlayer(ctx context.Context) (bool, error) {
	return exists(s.playerPath())
}

// Reset deletes the map, enemy and player files.
func (s *FileStore) Reset(ctx context.Context) error {
	for _, sub := range []string{mapDir, enemyDir} {
		dir := filepath.Join(s.root, sub)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to reset store: %w", err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to reset store: %w", err)
		}
	}
	if err := os.Remove(s.playerPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
