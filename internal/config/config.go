package config

import (
	"os"
	"strconv"

	"github.com/CosmicViraj/go-data-analyzer/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Plot   PlotConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// UploadConfig holds file upload limits
type UploadConfig struct {
	MaxSizeMB int64
}

// PlotConfig holds histogram rendering settings
type PlotConfig struct {
	Bins   int
	Width  int
	Height int
}

// Load reads configuration from environment variables with sensible
// defaults. Call godotenv.Load before this to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Upload: UploadConfig{
			MaxSizeMB: int64(getEnvInt("MAX_UPLOAD_MB", 50)),
		},
		Plot: PlotConfig{
			Bins:   getEnvInt("HISTOGRAM_BINS", 20),
			Width:  getEnvInt("CHART_WIDTH", 800),
			Height: getEnvInt("CHART_HEIGHT", 500),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.Upload.MaxSizeMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if c.Plot.Bins <= 0 {
		return errors.ConfigInvalid("HISTOGRAM_BINS must be positive")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
