package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config collects every environment-driven setting the server uses.
type Config struct {
	AppEnv   string
	HTTPAddr string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// RedisAddr selects the Redis-backed token store when set.
	// Empty means the in-memory store, which is fine for development.
	RedisAddr     string
	RedisPassword string

	LogoDir  string
	TokenTTL time.Duration
	SeedDB   bool
}

// Load reads configuration from environment variables with development defaults.
func Load() *Config {
	cfg := &Config{
		AppEnv:        getenv("APP_ENV", "development"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		PGHost:        getenv("PG_HOST", "localhost"),
		PGPort:        getenv("PG_PORT", "5432"),
		PGUser:        getenv("PG_USER", "postgres"),
		PGPassword:    os.Getenv("PG_PASSWORD"),
		PGDatabase:    getenv("PG_DB", "digiboard"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		LogoDir:       getenv("LOGO_DIR", "storage/airlines/logos"),
		TokenTTL:      24 * time.Hour,
		SeedDB:        getenv("SEED_DB", "true") == "true",
	}

	if hours, err := strconv.Atoi(os.Getenv("TOKEN_TTL_HOURS")); err == nil && hours > 0 {
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	return cfg
}

// DSN builds the postgres connection string shared by sqlx and GORM.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
