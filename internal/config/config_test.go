package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "movilidad.db", cfg.SQLitePath)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com ,")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IS_PROD", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	require.Len(t, cfg.CORSOrigins, 2)
	assert.Equal(t, "https://app.example.com", cfg.CORSOrigins[0])
	assert.Equal(t, "https://staging.example.com", cfg.CORSOrigins[1])
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.IsProd)
}
