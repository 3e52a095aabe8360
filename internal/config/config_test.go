package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, "ctrl+shift+space", cfg.Hotkey.Combo)
	assert.Equal(t, 250*time.Millisecond, cfg.Window.ToggleCooldown())
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce())
	assert.Equal(t, 2*time.Second, cfg.Search.Refresh())
	assert.Equal(t, 30*time.Second, cfg.Hotkey.Keepalive())
	assert.Equal(t, 5*time.Second, cfg.Backend.StatsPoll())
	assert.Equal(t, 20, cfg.Search.Limit)
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	svc := &configService{filePath: path}

	cfg := DefaultConfig()
	cfg.Backend.BaseURL = "http://localhost:9999"
	cfg.Hotkey.Combo = "ctrl+alt+q"
	cfg.Search.Limit = 50

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", loaded.Backend.BaseURL)
	assert.Equal(t, "ctrl+alt+q", loaded.Hotkey.Combo)
	assert.Equal(t, 50, loaded.Search.Limit)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := &configService{}
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadReturnsDefaultsWhenAbsent(t *testing.T) {
	svc := &configService{filePath: filepath.Join(t.TempDir(), "config.toml")}
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[backend]\nbase_url = \"http://10.0.0.1:8000\"\n"), 0644))

	svc := &configService{filePath: path}
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.1:8000", cfg.Backend.BaseURL)
	// Untouched sections keep their defaults
	assert.Equal(t, "ctrl+shift+space", cfg.Hotkey.Combo)
	assert.Equal(t, 20, cfg.Search.Limit)
}
