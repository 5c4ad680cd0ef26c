package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Parser   ParserConfig
	Export   ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver          string // "sqlite" | "postgres"
	DSN             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	DialTimeout     time.Duration
}

// ParserConfig holds thresholds and behavior flags for the parse stage
type ParserConfig struct {
	MinConfidence float64 // below this, stored receipts are flagged for review
	Workers       int
	QueueSize     int
	JobTimeout    time.Duration
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	OutputPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			DSN:             getEnv("DB_URL", "receipts.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Parser: ParserConfig{
			MinConfidence: getEnvAsFloat64("PARSER_MIN_CONFIDENCE", 0.60),
			Workers:       getEnvAsInt("PARSER_WORKERS", 4),
			QueueSize:     getEnvAsInt("PARSER_QUEUE_SIZE", 256),
			JobTimeout:    getEnvAsDuration("PARSER_JOB_TIMEOUT", time.Minute),
		},
		Export: ExportConfig{
			OutputPath: getEnv("EXPORT_PATH", "./receipts.xlsx"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return NewAppError("CONFIG_ERROR", "DB_DRIVER must be sqlite or postgres", ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Parser.MinConfidence < 0 || c.Parser.MinConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "PARSER_MIN_CONFIDENCE must be within [0,1]", ErrInvalidInput)
	}
	if c.Parser.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "PARSER_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
