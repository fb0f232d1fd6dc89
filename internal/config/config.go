package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Listings ListingsConfig
	Logging  LoggingConfig
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTSecret signs issued tokens. When empty the server generates an
	// ephemeral one at startup, invalidating sessions across restarts.
	JWTSecret string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Address string // Redis address (host:port)
}

// ListingsConfig holds listing lifecycle configuration
type ListingsConfig struct {
	// ExpirySchedule is a cron expression controlling when stale listings
	// are swept. Empty disables the sweep.
	ExpirySchedule string
	// MaxAgeDays is the age after which an available listing is marked
	// expired by the sweep.
	MaxAgeDays int
	// SeedFile is a YAML file with demo users and listings, loaded when the
	// database is empty. Empty disables seeding.
	SeedFile string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return &Config{
		Database: DatabaseConfig{
			URL: envOr("DATABASE_URL", "roost.sqlite"),
		},
		Redis: RedisConfig{
			Address: envOr("REDIS_ADDRESS", "localhost:6379"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Listings: ListingsConfig{
			ExpirySchedule: os.Getenv("LISTING_EXPIRY_SCHEDULE"),
			MaxAgeDays:     90,
			SeedFile:       os.Getenv("SEED_FILE"),
		},
		Logging: LoggingConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "json"),
		},
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
