package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"exercisetracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_PORT", ":9000")
	t.Setenv("API_PREFIX", "v1/")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.AppPort)
	assert.Equal(t, "/v1", cfg.APIPrefix)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, "file::memory:", cfg.DatabaseDSN)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DRIVER: postgres\nDATABASE_DSN: host=db user=tracker\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATABASE_DSN", "host=override")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "host=override", cfg.DatabaseDSN, "environment wins over the file")
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := config.Load()
	assert.ErrorContains(t, err, "unsupported STORAGE_DRIVER")
}
