// Package config reads application configuration from the environment.
package config

import (
	"os"
	"strconv"

	"fairlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Data     DataConfig
	Audit    AuditConfig
}

// DatabaseConfig holds database connection settings. The URL is only
// required when predictions are loaded from PostgreSQL.
type DatabaseConfig struct {
	URL   string
	Table string
}

// DataConfig holds file-based data source settings
type DataConfig struct {
	File string // csv or xlsx path
}

// AuditConfig holds audit run settings
type AuditConfig struct {
	TrueColumn    string
	PositiveLabel string
	Concurrency   int
}

// Load reads configuration from FAIRLENS_* environment variables
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:   getEnvOrDefault("DATABASE_URL", ""),
			Table: getEnvOrDefault("FAIRLENS_DB_TABLE", ""),
		},
		Data: DataConfig{
			File: getEnvOrDefault("FAIRLENS_DATA_FILE", ""),
		},
		Audit: AuditConfig{
			TrueColumn:    getEnvOrDefault("FAIRLENS_TRUE_COLUMN", "y_true"),
			PositiveLabel: getEnvOrDefault("FAIRLENS_POSITIVE_LABEL", "1"),
			Concurrency:   getEnvIntOrDefault("FAIRLENS_CONCURRENCY", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" && config.Data.File == "" {
		return errors.ConfigInvalid("either FAIRLENS_DATA_FILE or DATABASE_URL is required")
	}
	if config.Database.URL != "" && config.Database.Table == "" && config.Data.File == "" {
		return errors.ConfigInvalid("FAIRLENS_DB_TABLE is required when loading from the database")
	}
	if config.Audit.Concurrency < 1 {
		return errors.ConfigInvalid("FAIRLENS_CONCURRENCY must be positive")
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
