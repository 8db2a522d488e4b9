package storage

import (
	"context"

	"github.com/samdwyer/backrooms/internal/world"
)

// DiscoverMapSize probes the diagonal chunks (0,0), (1,1), ... and returns
// the index of the first one that is missing. An empty store has size 0.
func DiscoverMapSize(ctx context.Context, s Store) (int, error) {
	n := 0
	for {
		ok, err := s.ChunkExists(ctx, world.ChunkCoord{X: n, Y: n})
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

// HasSavedMap reports whether chunk (0,0) has been saved.
func HasSavedMap(ctx context.Context, s Store) (bool, error) {
	return s.ChunkExists(ctx, world.ChunkCoord{})
}
