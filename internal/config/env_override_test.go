package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("RDMS_DATA_DIR sets data dir", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RDMS_DATA_DIR", "/tmp/lab")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/lab", cfg.Data.Dir)
	})

	t.Run("RDMS_THEME overrides file theme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RDMS_THEME", "dark")

		cfg := &Config{UI: UIConfig{Theme: ThemeLight}}
		cfg.applyEnvOverrides()

		assert.Equal(t, ThemeDark, cfg.UI.Theme)
	})

	t.Run("RDMS_DEBUG enables debug logging", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RDMS_DEBUG", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty env leaves config alone", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		cfg.Data.Dir = "/keep"
		cfg.applyEnvOverrides()

		assert.Equal(t, "/keep", cfg.Data.Dir)
		assert.Equal(t, ThemeLight, cfg.UI.Theme)
		assert.False(t, cfg.Logging.DebugMode)
	})
}

func TestLoad_InvalidThemeFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RDMS_THEME", "neon")

	_, err := Load(t.TempDir() + "/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ui theme")
}
