// Package main is the entry point for The Backrooms.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/samdwyer/backrooms/internal/game"
	"github.com/samdwyer/backrooms/internal/storage"
	"github.com/samdwyer/backrooms/internal/telemetry"
)

func main() {
	newMap := flag.Bool("new", false, "discard the saved map and generate a new one")
	flag.Parse()
	os.Exit(run(*newMap))
}

// run starts the game and returns the process exit code. Deferred cleanup
// runs before the code reaches os.Exit.
func run(newMap bool) int {
	// LoadConfig also loads .env, which makes HONEYCOMB_BACKROOMS_API_KEY
	// available to setupOTelEnv.
	cfg, err := game.LoadConfig()
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}
	cfg.NewMap = newMap

	// The terminal belongs to the game from here on; log to a file.
	if err := os.MkdirAll(cfg.SaveDir, 0o755); err != nil {
		log.Printf("Failed to create save directory: %v", err)
		return 1
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.SaveDir, "backrooms.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("Failed to open log file: %v", err)
		return 1
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	store, err := storage.Open(ctx, cfg.Store, cfg.SaveDir, cfg.DatabaseURL)
	if err != nil {
		log.Printf("Failed to open save store: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to open save store: %v\n", err)
		return 1
	}
	defer store.Close()

	// Create and run game
	g, err := game.New(cfg, store)
	if err != nil {
		log.Printf("Failed to initialize game: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		return 1
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		return 1
	}
	return 0
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Without an API key the exporter keeps its defaults.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_BACKROOMS_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_BACKROOMS_DATASET")
	if dataset == "" {
		dataset = "backrooms" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
