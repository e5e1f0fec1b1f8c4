package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	s, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, ModeScripted, s.Mode)
	assert.Equal(t, float64(StartingGold), s.StartingGold)
	assert.Equal(t, BaseHealth, s.BaseHealth)
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Zero(t, s.Cols)
	assert.Nil(t, s.Corners)
	assert.Equal(t, 1.0, s.Speed)
}

func TestFromEnvOverrides(t *testing.T) {
	s, err := FromEnv(envMap(map[string]string{
		"TD_MODE":          "Infinity",
		"TD_SEED":          "99",
		"TD_COLS":          "12",
		"TD_ROWS":          "9",
		"TD_STARTING_GOLD": "250.5",
		"TD_BASE_HEALTH":   "7",
		"TD_LOG_LEVEL":     "debug",
		"TD_CORNERS":       "0,0; 3,0 ;3,2",
		"TD_DEFINITIONS":   "defs.yaml",
		"TD_SPEED":         "4",
	}))
	require.NoError(t, err)
	assert.Equal(t, ModeInfinity, s.Mode)
	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, 12, s.Cols)
	assert.Equal(t, 9, s.Rows)
	assert.Equal(t, 250.5, s.StartingGold)
	assert.Equal(t, 7, s.BaseHealth)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, [][2]int{{0, 0}, {3, 0}, {3, 2}}, s.Corners)
	assert.Equal(t, "defs.yaml", s.DefinitionsPath)
	assert.Equal(t, 4.0, s.Speed)
}

func TestFromEnvErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"mode":    {"TD_MODE": "arcade"},
		"seed":    {"TD_SEED": "x"},
		"cols":    {"TD_COLS": "-1"},
		"gold":    {"TD_STARTING_GOLD": "lots"},
		"level":   {"TD_LOG_LEVEL": "loud"},
		"corners": {"TD_CORNERS": "1;2"},
		"speed":   {"TD_SPEED": "3"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envMap(env))
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TD_ROWS=11\n"), 0o600))
	t.Setenv("TD_ROWS", "")
	require.NoError(t, os.Unsetenv("TD_ROWS"))

	s, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 11, s.Rows)
	require.NoError(t, os.Unsetenv("TD_ROWS"))
}
