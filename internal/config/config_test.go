package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skinview.yaml")
	data := []byte(`
port: "9999"
fps: 60
mode: mixed
speed: 0.5
cape: false
seed: 42
log_level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, 60, cfg.FPS)
	require.Equal(t, time.Second/60, cfg.TickInterval())
	require.Equal(t, "mixed", cfg.Mode)
	require.Equal(t, 0.5, cfg.Speed)
	require.False(t, cfg.Cape)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, "debug", cfg.LogLevel)

	// Unset fields keep their defaults.
	require.Equal(t, Default().StaticDir, cfg.StaticDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skinview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`port: "9999"`), 0o644))

	t.Setenv("SKINVIEW_PORT", "7777")
	t.Setenv("SKINVIEW_MODE", "fly")
	t.Setenv("SKINVIEW_FPS", "60")
	t.Setenv("SKINVIEW_SPEED", "0.25")
	t.Setenv("SKINVIEW_CAPE", "false")
	t.Setenv("SKINVIEW_SEED", "42")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "7777", cfg.Port)
	require.Equal(t, "fly", cfg.Mode)
	require.Equal(t, 60, cfg.FPS)
	require.Equal(t, 0.25, cfg.Speed)
	require.False(t, cfg.Cape)
	require.Equal(t, int64(42), cfg.Seed)
}

func TestLoad_MalformedEnvKeepsDefaults(t *testing.T) {
	t.Setenv("SKINVIEW_FPS", "fast")
	t.Setenv("SKINVIEW_SPEED", "very")
	t.Setenv("SKINVIEW_CAPE", "maybe")
	t.Setenv("SKINVIEW_SEED", "1.5")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default().FPS, cfg.FPS)
	require.Equal(t, Default().Speed, cfg.Speed)
	require.Equal(t, Default().Cape, cfg.Cape)
	require.Equal(t, Default().Seed, cfg.Seed)
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skinview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a string"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
