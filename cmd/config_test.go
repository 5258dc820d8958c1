package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cashrun/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back to defaults without an env file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "")
		t.Setenv("ORDER_PENDING_TTL", "")

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, 30*time.Minute, cfg.OrderPendingTTL)
		assert.Equal(t, 10*time.Minute, cfg.ProfileCacheTTL)
	})

	t.Run("should read values from the env file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte(
			"ORDER_PENDING_TTL=45m\nATM_SAMPLE_LIMIT=25\nLOG_LEVEL=debug\nDB_NAME=orders\n"), 0o600))
		t.Cleanup(func() {
			for _, k := range []string{"ORDER_PENDING_TTL", "ATM_SAMPLE_LIMIT", "LOG_LEVEL", "DB_NAME"} {
				_ = os.Unsetenv(k)
			}
		})

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 45*time.Minute, cfg.OrderPendingTTL)
		assert.Equal(t, 25, cfg.AtmSampleLimit)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Contains(t, cfg.DSN(), "dbname=orders")
	})

	t.Run("should report malformed durations", func(t *testing.T) {
		t.Setenv("PROFILE_CACHE_TTL", "ten minutes")

		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PROFILE_CACHE_TTL")
	})
}
