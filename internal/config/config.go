// Package config reads the optional config.yaml with display and alert
// preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window        WindowConfig        `yaml:"window"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Sound         SoundConfig         `yaml:"sound"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
	Hourly  bool `yaml:"hourly"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // beep scale, 0 = unchanged
}

const (
	appDir     = "taskpomodoro"
	configFile = "config.yaml"
)

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  500,
			Height: 650,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Hourly:  true,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0,
		},
	}
}

// DefaultPath returns config.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, appDir, configFile), nil
}

// ReadConfig reads path on top of the defaults, so keys missing from the
// file keep their default value.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("parsing config: window size %vx%v must be positive", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// Load is ReadConfig that treats a missing file as the defaults.
func Load(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}
