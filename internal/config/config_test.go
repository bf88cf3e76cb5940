package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, DefaultDevelopmentAPIURL, cfg.ResolveAPIBaseURL())
	assert.Equal(t, 30*time.Second, cfg.APITimeout())
	assert.True(t, cfg.PrettyLogging())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
mode: production
api:
  timeout: 5s
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, DefaultProductionAPIURL, cfg.ResolveAPIBaseURL())
	assert.Equal(t, 5*time.Second, cfg.APITimeout())
	assert.False(t, cfg.PrettyLogging())
}

func TestEnvOverrideWinsOverModeDefault(t *testing.T) {
	t.Setenv("ALUMNISPHERE_API_URL", "http://10.0.0.5:9000/")
	t.Setenv("ALUMNISPHERE_MODE", "production")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	// Explicit URL beats the production default; trailing slash is trimmed.
	assert.Equal(t, "http://10.0.0.5:9000", cfg.ResolveAPIBaseURL())
}

func TestLoadConfigRejectsUnknownMode(t *testing.T) {
	t.Setenv("ALUMNISPHERE_MODE", "staging")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode must be development or production")
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("ALUMNISPHERE_API_TIMEOUT", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ALUMNISPHERE_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("ALUMNISPHERE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("ALUMNISPHERE_TEST_MISSING", "fallback"))
}
