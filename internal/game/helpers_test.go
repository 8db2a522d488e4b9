package game

import (
	"context"
	"testing"

	"github.com/samdwyer/backrooms/internal/storage"
	"github.com/samdwyer/backrooms/internal/world"
)

// openWorld saves an n×n map of wall-free chunks and returns its store.
func openWorld(t *testing.T, n int) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	for cy := 0; cy < n; cy++ {
		for cx := 0; cx < n; cx++ {
			c := &world.Chunk{Coord: world.ChunkCoord{X: cx, Y: cy}}
			if err := store.SaveChunk(context.Background(), c); err != nil {
				t.Fatalf("SaveChunk() error = %v", err)
			}
		}
	}
	return store
}
