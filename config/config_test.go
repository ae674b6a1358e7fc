package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "development")
	t.Setenv("DB_HOST", "dbhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "craftnet")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "craftnet_dev")
	t.Setenv("JWT_SECRET", "explicit-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "dbhost", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "craftnet", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "craftnet_dev", cfg.DBName)
	assert.Equal(t, "explicit-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "development")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.ServerPort)
	// Development gets a fallback signing key.
	assert.Equal(t, "dev-insecure-secret", cfg.JWTSecret)
}

func TestLoadConfigInvalidRedisDB(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "development")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CI", "")

	cfg := &Config{
		ServerPort: "8080",
		ServerHost: "0.0.0.0",
		DBHost:     "dbhost",
		DBPort:     "5432",
		DBUser:     "craftnet",
		DBPassword: "secret",
		DBName:     "craftnet",
		DBSSLMode:  "require",
		JWTSecret:  "a-real-secret",
	}
	assert.NoError(t, ValidateConfig(cfg))

	// Missing password fails.
	cfg.DBPassword = ""
	assert.Error(t, ValidateConfig(cfg))
	cfg.DBPassword = "secret"

	// The development fallback key is rejected in production.
	cfg.JWTSecret = "dev-insecure-secret"
	assert.Error(t, ValidateConfig(cfg))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
