// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"os"
	"time"
)

// Defaults for everything except the signing secret, which has no safe
// default.
const (
	defaultAddr     = ":8080"
	defaultDBPath   = "./data/nextgen.db"
	defaultTokenTTL = 8 * time.Hour
)

// Config holds all runtime settings for the server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database file path.
	DBPath string

	// JWTSecret signs and verifies tokens. Required.
	JWTSecret string

	// TokenTTL is how long issued tokens remain valid.
	TokenTTL time.Duration
}

// Load reads configuration from environment variables, applying
// defaults. JWT_SECRET is required.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("TOKEN_TTL must be a valid duration, e.g. 8h")
		}
		ttl = parsed
	}

	return &Config{
		Addr:      getEnv("ADDR", defaultAddr),
		DBPath:    getEnv("DB_PATH", defaultDBPath),
		JWTSecret: secret,
		TokenTTL:  ttl,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
