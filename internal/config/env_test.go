package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentVariables_Success(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-gemini-key")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/reports")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "test-gemini-key", cfg.GoogleAPIKey)
	assert.Equal(t, "postgres://localhost:5432/reports", cfg.DatabaseURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.Port)
}

func TestLoadEnvironmentVariables_MissingGoogleKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/reports")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoadEnvironmentVariables_MissingDatabaseURL(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-gemini-key")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-gemini-key")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/reports")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Port)
}
