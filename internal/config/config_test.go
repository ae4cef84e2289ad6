package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "development", cfg.Log.Env)
	assert.Empty(t, cfg.DB.Path)
	assert.Equal(t, 300, cfg.History.MaxRecentIcons)
	assert.Equal(t, 3, cfg.History.MaxSessions)
	assert.Equal(t, 20, cfg.Round.AttemptsPerSlot)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoadFromSearchPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := "log:\n  level: debug\nserver:\n  addr: \":9090\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.History.MaxSessions)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "custom.yaml")
	yaml := "db:\n  path: /tmp/kids.db\nhistory:\n  max_sessions: 5\n"
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kids.db", cfg.DB.Path)
	assert.Equal(t, 5, cfg.History.MaxSessions)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MAMCHOI_LOG_LEVEL", "warn")
	t.Setenv("MAMCHOI_ROUND_ATTEMPTS_PER_SLOT", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Round.AttemptsPerSlot)
}

func TestLoadRejectsNonPositiveLimits(t *testing.T) {
	isolate(t)
	t.Setenv("MAMCHOI_HISTORY_MAX_RECENT_ICONS", "0")

	_, err := Load("")
	assert.ErrorContains(t, err, "max_recent_icons")
}
