package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/CosmicViraj/go-data-analyzer/internal/config"
	"github.com/CosmicViraj/go-data-analyzer/ui"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := ui.NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to initialize web UI: %v", err)
	}

	if err := app.Start(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
