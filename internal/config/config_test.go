package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "SEED_PATH", "REDIS_ADDR", "CACHE_TTL"} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Equal(t, "data/seeds/scenarios.json", cfg.SeedPath)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://dispatch@localhost:5432/dispatch")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "15m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
}

func TestFromEnvRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "postgres without url", env: map[string]string{"DB_DRIVER": "postgres"}},
		{name: "bad port", env: map[string]string{"PORT": "http"}},
		{name: "bad ttl", env: map[string]string{"CACHE_TTL": "soon"}},
		{name: "negative ttl", env: map[string]string{"CACHE_TTL": "-1m"}},
		{name: "bad redis addr", env: map[string]string{"REDIS_ADDR": "localhost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("DISPATCH_TEST_KEY", "  value ")
	assert.Equal(t, "value", Get("DISPATCH_TEST_KEY", "fallback"))

	t.Setenv("DISPATCH_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("DISPATCH_TEST_KEY", "fallback"))
}
