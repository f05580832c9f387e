// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string        `validate:"required,numeric"`
	DBDriver    string        `validate:"oneof=sqlite postgres"`
	DBPath      string        `validate:"required_if=DBDriver sqlite"`
	DatabaseURL string        `validate:"required_if=DBDriver postgres"`
	SeedPath    string        `validate:"required"`
	RedisAddr   string        `validate:"omitempty,hostname_port"`
	CacheTTL    time.Duration `validate:"gt=0"`
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads an optional .env file, then the environment, and validates
// the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	ttl, err := time.ParseDuration(Get("CACHE_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("config: parse CACHE_TTL: %w", err)
	}

	cfg := Config{
		Port:        Get("PORT", "8080"),
		DBDriver:    strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/scenarios.json"),
		RedisAddr:   Get("REDIS_ADDR", ""),
		CacheTTL:    ttl,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
