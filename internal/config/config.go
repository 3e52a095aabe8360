package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Backend BackendSettings `toml:"backend"`
	Hotkey  HotkeySettings  `toml:"hotkey"`
	Window  WindowSettings  `toml:"window"`
	Search  SearchSettings  `toml:"search"`
}

// BackendSettings configures the HTTP boundary to the index service
type BackendSettings struct {
	BaseURL     string `toml:"base_url"`
	TimeoutMS   int    `toml:"timeout_ms"`
	StatsPollMS int    `toml:"stats_poll_ms"`
}

// HotkeySettings configures the global activation binding
type HotkeySettings struct {
	Combo       string `toml:"combo"`
	KeepaliveMS int    `toml:"keepalive_ms"`
}

// WindowSettings configures the overlay surface
type WindowSettings struct {
	Label            string `toml:"label"`
	Width            int    `toml:"width"`
	Height           int    `toml:"height"`
	ToggleCooldownMS int    `toml:"toggle_cooldown_ms"`
}

// SearchSettings configures the query/refresh behavior
type SearchSettings struct {
	DebounceMS int `toml:"debounce_ms"`
	RefreshMS  int `toml:"refresh_ms"`
	Limit      int `toml:"limit"`
}

// Duration accessors so callers don't juggle millisecond ints

func (b BackendSettings) Timeout() time.Duration   { return time.Duration(b.TimeoutMS) * time.Millisecond }
func (b BackendSettings) StatsPoll() time.Duration { return time.Duration(b.StatsPollMS) * time.Millisecond }
func (h HotkeySettings) Keepalive() time.Duration  { return time.Duration(h.KeepaliveMS) * time.Millisecond }
func (w WindowSettings) ToggleCooldown() time.Duration {
	return time.Duration(w.ToggleCooldownMS) * time.Millisecond
}
func (s SearchSettings) Debounce() time.Duration { return time.Duration(s.DebounceMS) * time.Millisecond }
func (s SearchSettings) Refresh() time.Duration  { return time.Duration(s.RefreshMS) * time.Millisecond }

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	quickboardDir := filepath.Join(configDir, "quickboard")
	os.MkdirAll(quickboardDir, 0755)

	return &configService{
		filePath: filepath.Join(quickboardDir, "config.toml"),
	}
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Backend: BackendSettings{
			BaseURL:     "http://localhost:8000",
			TimeoutMS:   5000,
			StatsPollMS: 5000,
		},
		Hotkey: HotkeySettings{
			Combo:       "ctrl+shift+space",
			KeepaliveMS: 30000,
		},
		Window: WindowSettings{
			Label:            "quickboard",
			Width:            720,
			Height:           480,
			ToggleCooldownMS: 250,
		},
		Search: SearchSettings{
			DebounceMS: 300,
			RefreshMS:  2000,
			Limit:      20,
		},
	}
}
