package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()

	v := viper.New()
	config.SetDefaults(v)
	require.NoError(t, config.BindEnv(v))
	return v
}

func TestLoad_Defaults(t *testing.T) {
	v := newViper(t)

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "pinpoint", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2<<20, cfg.Engine.MaxDocumentBytes)
	assert.Equal(t, 40, cfg.Engine.MaxCandidates)
	assert.Equal(t, 10, cfg.Engine.MaxAlternatives)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PINPOINT_SERVER_ADDRESS", "127.0.0.1:9090")
	t.Setenv("PINPOINT_MAX_DOCUMENT_BYTES", "4096")

	cfg, err := config.Load(newViper(t))
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.True(t, cfg.Logger.Development)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address)
	assert.Equal(t, 4096, cfg.Engine.MaxDocumentBytes)
}

func TestLoad_DebugRaisesLogLevel(t *testing.T) {
	t.Setenv("APP_DEBUG", "true")

	cfg, err := config.Load(newViper(t))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  address: ":7070"
  write_timeout: 45s
engine:
  max_candidates: 12
`), 0o600))

	v := newViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 12, cfg.Engine.MaxCandidates)
	assert.Equal(t, 10, cfg.Engine.MaxAlternatives)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PINPOINT_MAX_CANDIDATES", "0")

	_, err := config.Load(newViper(t))
	require.ErrorIs(t, err, config.ErrConfigValidationFailed)
}
