package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSokobanConfig(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".sokoban", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sokoban.yaml"), []byte("levels:\n  pack: tutorial\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tutorial", cfg.Levels.Pack)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, 3.0, cfg.Motion.CellsPerSecond)
	assert.Equal(t, 20, cfg.Arena.Width)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
arena:
  width: 30
  height: 20
motion:
  preset: fast
render:
  cell_width: 0
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ArenaConfig{Width: 30, Height: 20}, cfg.Arena)
	assert.Equal(t, 6.0, cfg.Motion.CellsPerSecond)
	assert.Equal(t, 2, cfg.Render.CellWidth)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("arena: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SOKOBAN_PACK=tutorial\nSOKOBAN_SSH_ADDR=:2300\n"), 0o644))

	// Process environment wins over the .env file.
	t.Setenv(EnvPack, "classic")
	t.Setenv(EnvDB, "/tmp/records.db")
	t.Setenv(EnvLevelsDir, "/srv/levels")
	t.Setenv(EnvSpeed, "turbo")

	cfg := DefaultSokobanConfig()
	require.NoError(t, ApplyEnv(&cfg, envFile))
	t.Cleanup(func() { os.Unsetenv(EnvSSHAddr) })

	assert.Equal(t, "classic", cfg.Levels.Pack)
	assert.Equal(t, ":2300", cfg.Server.Addr)
	assert.Equal(t, "/tmp/records.db", cfg.Storage.DB)
	assert.Equal(t, "/srv/levels", cfg.Levels.Dir)
	assert.Equal(t, 12.0, cfg.Motion.CellsPerSecond)
	assert.Equal(t, SpeedTurbo, cfg.Motion.Preset)
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := DefaultSokobanConfig()
	assert.NoError(t, ApplyEnv(&cfg, filepath.Join(t.TempDir(), ".env")))
	assert.Equal(t, DefaultSokobanConfig(), cfg)
}

func TestApplyEnvSpeed(t *testing.T) {
	tests := []struct {
		value   string
		want    float64
		wantErr bool
	}{
		{"slow", 1.5, false},
		{"4.5", 4.5, false},
		{"-1", 0, true},
		{"warp", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(EnvSpeed, tc.value)
			cfg := DefaultSokobanConfig()
			err := ApplyEnv(&cfg, filepath.Join(t.TempDir(), ".env"))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Motion.CellsPerSecond)
		})
	}
}

func TestSpeedPresets(t *testing.T) {
	cfg := DefaultSokobanConfig()
	ApplySpeedPreset(&cfg, SpeedPreset("unknown"))
	assert.Equal(t, 3.0, cfg.Motion.CellsPerSecond)
	assert.Empty(t, cfg.Motion.Preset)

	ApplySpeedPreset(&cfg, SpeedSlow)
	assert.Equal(t, 1.5, cfg.Motion.CellsPerSecond)
	assert.Equal(t, SpeedSlow, cfg.Motion.Preset)
}

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, DefaultYAML())
	assert.Equal(t, DefaultSokobanConfig().Server, cfg.Server)
	assert.Equal(t, DefaultSokobanConfig().Render, cfg.Render)
}
