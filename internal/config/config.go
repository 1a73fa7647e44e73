package config

import (
	"os"
	"strconv"

	"sigdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
	Sweep    SweepConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
}

// DataConfig holds dataset source settings
type DataConfig struct {
	VotesFile   string
	RatingsFile string
	DatasetName string
}

// SweepConfig holds analysis concurrency settings
type SweepConfig struct {
	MaxConcurrent int64
}

// Load reads configuration from environment variables. DATABASE_URL is
// optional here; entrypoints that persist results validate it themselves via
// RequireDatabase.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8090"),
		},
		Data: DataConfig{
			VotesFile:   getEnvOrDefault("VOTES_FILE", "data/comparisons.csv"),
			RatingsFile: getEnvOrDefault("RATINGS_FILE", ""),
			DatasetName: getEnvOrDefault("DATASET_NAME", "Preference Tests"),
		},
		Sweep: SweepConfig{
			MaxConcurrent: int64(getEnvIntOrDefault("SWEEP_CONCURRENCY", 8)),
		},
	}

	if cfg.Sweep.MaxConcurrent < 1 {
		return nil, errors.ConfigInvalid("SWEEP_CONCURRENCY must be at least 1")
	}

	return cfg, nil
}

// RequireDatabase validates that a database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
