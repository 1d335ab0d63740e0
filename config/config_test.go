package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset removes an env var for the duration of the test; t.Setenv first
// so the original value is restored on cleanup.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	unset(t, "PORT")
	unset(t, "DATABASE_PATH")
	unset(t, "BCRYPT_COST")
	unset(t, "GIN_MODE")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "database/rentnest.db", cfg.DatabasePath)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "debug", cfg.GinMode)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_PATH", "/tmp/listings.db")
	t.Setenv("GIN_MODE", "release")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/tmp/listings.db", cfg.DatabasePath)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoadConfigRejectsMissingSecret(t *testing.T) {
	unset(t, "JWT_SECRET_KEY")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("PORT", "99999")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}
