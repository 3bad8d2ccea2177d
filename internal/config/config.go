// Package config loads runtime settings from the environment, with an
// optional .env overlay for development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURL    string
	MongoDBName string
	RedisURL    string
	LogLevel    string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
	CacheTTL           time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present. The token secrets have no default
// and must be set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		MongoURL:           getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDBName:        getEnv("MONGO_DB_NAME", "todoapp"),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
	}

	var err error
	if cfg.AccessTokenTTL, err = getDuration("ACCESS_TOKEN_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 300*time.Second); err != nil {
		return nil, err
	}

	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET must be set")
	}
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_SECRET must be set")
	}

	return cfg, nil
}

// SlogLevel maps the configured level name onto slog. Unknown names fall
// back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
