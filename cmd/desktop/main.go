package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/CosmicViraj/go-data-analyzer/desktop"
	"github.com/CosmicViraj/go-data-analyzer/internal/config"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	desktop.New(cfg).ShowAndRun()
}
