package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/backrooms/internal/storage"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible maps.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// SaveDir is the root of the file store.
	SaveDir string

	// Generation tiers, each 0, 1 or 2.
	SizeTier    int
	DensityTier int
	DoorTier    int

	Store       storage.Backend
	DatabaseURL string

	// NewMap discards any saved map and generates a fresh one.
	NewMap bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		SaveDir: "saves",
		Store:   storage.BackendFile,
	}
}

// LoadConfig reads configuration from the environment, after loading a
// .env file if one is present.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv("BACKROOMS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("BACKROOMS_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("BACKROOMS_SAVE_DIR"); v != "" {
		cfg.SaveDir = v
	}

	tiers := []struct {
		key string
		dst *int
	}{
		{"BACKROOMS_MAP_SIZE", &cfg.SizeTier},
		{"BACKROOMS_DENSITY", &cfg.DensityTier},
		{"BACKROOMS_DOORS", &cfg.DoorTier},
	}
	for _, t := range tiers {
		v := getenv(t.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", t.key, err)
		}
		*t.dst = n
	}

	if v := getenv("BACKROOMS_STORE"); v != "" {
		cfg.Store = storage.Backend(v)
	}
	cfg.DatabaseURL = getenv("DATABASE_URL")
	if cfg.Store == storage.BackendPostgres && cfg.DatabaseURL == "" {
		return cfg, errors.New("BACKROOMS_STORE=postgres requires DATABASE_URL")
	}
	return cfg, nil
}
