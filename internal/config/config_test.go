package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-user@env-host/env-db")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-user@env-host/env-db", cfg.Database.URL)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestDSNPrefersURL(t *testing.T) {
	db := DatabaseConfig{
		URL:  "postgres://u@h/d",
		Host: "ignored",
	}
	assert.Equal(t, "postgres://u@h/d", db.DSN())

	db = DatabaseConfig{
		Host: "localhost", Port: 5432, User: "journal",
		Password: "secret", DBName: "journal", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=journal password=secret dbname=journal sslmode=disable",
		db.DSN())
}
