// Command mapgen generates and saves a map without starting the game.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gookit/color"

	"github.com/samdwyer/backrooms/internal/game"
	"github.com/samdwyer/backrooms/internal/storage"
	"github.com/samdwyer/backrooms/internal/telemetry"
	"github.com/samdwyer/backrooms/internal/world"
)

var (
	phaseStyle = color.Style{color.FgCyan}
	valueStyle = color.Style{color.FgGreen, color.OpBold}
	warnStyle  = color.Style{color.FgYellow, color.OpBold}
	errorStyle = color.Style{color.FgRed, color.OpBold}
)

func main() {
	cfg, err := game.LoadConfig()
	if err != nil {
		errorStyle.Printf("Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	flag.IntVar(&cfg.SizeTier, "size", cfg.SizeTier, "map size tier (0-2)")
	flag.IntVar(&cfg.DensityTier, "density", cfg.DensityTier, "room density tier (0-2)")
	flag.IntVar(&cfg.DoorTier, "doors", cfg.DoorTier, "door frequency tier (0-2, higher means fewer doors)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a random map")
	flag.StringVar(&cfg.SaveDir, "dir", cfg.SaveDir, "save directory for the file store")
	store := flag.String("store", string(cfg.Store), "save store: file or postgres")
	reach := flag.Bool("reach", false, "report how much of the start chunk the player can reach")
	flag.Parse()
	cfg.Store = storage.Backend(*store)

	if err := run(cfg, *reach); err != nil {
		errorStyle.Printf("mapgen: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, reach bool) error {
	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	params, err := game.ParamsFromConfig(cfg)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := storage.Open(ctx, cfg.Store, cfg.SaveDir, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer s.Close()

	color.Printf("Generating %s map, %s rooms per chunk, %s%% doors, seed %s\n",
		valueStyle.Sprintf("%dx%d", params.MapSize, params.MapSize),
		valueStyle.Sprint(params.Density),
		valueStyle.Sprint(params.DoorFreq),
		valueStyle.Sprint(seed))

	start := time.Now()
	stats, err := game.GenerateWorld(ctx, s, params, rand.New(rand.NewSource(seed)), func(ph game.Phase) {
		phaseStyle.Printf("  %-8s %s\n", ph, time.Since(start).Round(time.Millisecond))
	})
	if err != nil {
		return err
	}

	color.Printf("Saved %s chunks with %s rooms, %s doors and %s enemies in %s\n",
		valueStyle.Sprint(stats.Chunks),
		valueStyle.Sprint(stats.Rooms),
		valueStyle.Sprint(stats.DoorsCut),
		valueStyle.Sprint(stats.Enemies),
		time.Since(start).Round(time.Millisecond))

	if reach {
		return reportReach(ctx, s, stats)
	}
	return nil
}

func reportReach(ctx context.Context, s storage.Store, stats game.Stats) error {
	c, err := s.LoadChunk(ctx, stats.Start)
	if err != nil {
		return err
	}
	r := world.ReachableFrom(c, int(stats.StartPos.X)/world.TileSize, int(stats.StartPos.Y)/world.TileSize)

	style := valueStyle
	if r.Sealed() > 0 {
		style = warnStyle
	}
	color.Printf("Start chunk %s: %s of %s open cells reachable, %s sealed\n",
		stats.Start,
		valueStyle.Sprint(r.Reachable),
		valueStyle.Sprint(r.Open),
		style.Sprint(r.Sealed()))
	return nil
}
