package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rskv-p/radix/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "radix", cfg.ServiceName)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.AuthEnabled)
	assert.Empty(t, cfg.Users)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"service_name": "radix-test",
		"http_addr": "0.0.0.0:9999",
		"log_level": "debug",
		"auth_enabled": false,
		"users": [
			{"username": "admin", "password_hash": "$2a$10$x", "role": "admin"}
		]
	}`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "radix-test", cfg.ServiceName)
	assert.Equal(t, "0.0.0.0:9999", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.AuthEnabled)
	require.Len(t, cfg.Users, 1)
	assert.Equal(t, "admin", cfg.Users[0].Username)
	assert.Equal(t, "admin", cfg.Users[0].Role)

	// untouched fields keep their defaults
	assert.Equal(t, 720, cfg.TokenTTLMin)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("RADIX_TEST_SECRET", "s3cret")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jwt_secret": "${RADIX_TEST_SECRET}"}`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JwtSecret)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RADIX_HTTP_ADDR", "127.0.0.1:7777")
	t.Setenv("RADIX_AUTH_ENABLED", "false")
	t.Setenv("RADIX_TOKEN_TTL_MIN", "60")

	cfg := config.LoadFromEnv("RADIX_")
	assert.Equal(t, "127.0.0.1:7777", cfg.HTTPAddr)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, 60, cfg.TokenTTLMin)
	assert.Equal(t, "radix", cfg.ServiceName)
}

func TestLoadWithFallback(t *testing.T) {
	// no file anywhere: falls back to env defaults
	cfg := config.LoadWithFallback("", "RADIX_")
	assert.Equal(t, "radix", cfg.ServiceName)
}
