package platform

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firstgame/internal/config"
	"firstgame/internal/render"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = LoadConfig(render.FSAssets{FS: fstest.MapFS{}}, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfigFromAssets(t *testing.T) {
	assets := render.FSAssets{FS: fstest.MapFS{
		config.FileName: {Data: []byte("game:\n  start_x: 5\naudio:\n  volume: 0.2\n")},
	}}
	cfg, err := LoadConfig(assets, envOf(map[string]string{config.EnvAudio: "false"}))
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Game.StartX)
	assert.Equal(t, 200.0, cfg.Game.StartY)
	assert.Equal(t, 0.2, cfg.Audio.Volume)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadConfigPathWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	assets := render.FSAssets{FS: fstest.MapFS{
		config.FileName: {Data: []byte("log:\n  level: error\n")},
	}}
	cfg, err := LoadConfig(assets, envOf(map[string]string{config.EnvConfigPath: path}))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFallsBack(t *testing.T) {
	assets := render.FSAssets{FS: fstest.MapFS{
		config.FileName: {Data: []byte("window:\n  width: -3\n")},
	}}
	cfg, err := LoadConfig(assets, envOf(nil))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, config.Default(), cfg)

	_, err = LoadConfig(nil, envOf(map[string]string{config.EnvConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}))
	require.Error(t, err)

	cfg, err = LoadConfig(nil, envOf(map[string]string{config.EnvAudio: "loud"}))
	require.Error(t, err)
	assert.True(t, cfg.Audio.Enabled)
}

func TestLoadConfigFallbackKeepsEnv(t *testing.T) {
	assets := render.FSAssets{FS: fstest.MapFS{
		config.FileName: {Data: []byte("window:\n  width: -3\n")},
	}}
	cfg, err := LoadConfig(assets, envOf(map[string]string{
		config.EnvAudio:    "false",
		config.EnvAssets:   "/x",
		config.EnvLogLevel: "debug",
	}))
	require.ErrorIs(t, err, config.ErrInvalid)
	want := config.Default()
	want.Audio.Enabled = false
	want.Assets = "/x"
	want.Log.Level = "debug"
	assert.Equal(t, want, cfg)

	cfg, err = LoadConfig(assets, envOf(map[string]string{
		config.EnvAssets:   "/x",
		config.EnvLogLevel: "verbose",
	}))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, config.Default(), cfg, "invalid overrides are dropped with the file")
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log.Level = "warn"
	SetupLogging(&buf, cfg, assert.AnError)
	assert.Contains(t, buf.String(), "W/Config: configuration problem")
}
