package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings no cache build can run with.
func (c *Config) Validate() error {
	if c.Vision.MaxViewDistance <= 0 {
		return fmt.Errorf("%w: max_view_distance %d", ErrInvalid, c.Vision.MaxViewDistance)
	}
	if c.Vision.BaselineDistance <= 0 {
		return fmt.Errorf("%w: baseline_distance %d", ErrInvalid, c.Vision.BaselineDistance)
	}
	if c.Lighting.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Lighting.Workers)
	}
	if c.Lighting.SunElevation < -90 || c.Lighting.SunElevation > 90 {
		return fmt.Errorf("%w: sun_elevation %v", ErrInvalid, c.Lighting.SunElevation)
	}
	if c.Lighting.Weather.SightPenalty <= 0 {
		return fmt.Errorf("%w: sight_penalty %v", ErrInvalid, c.Lighting.Weather.SightPenalty)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Lumen")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Lumen")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lumen")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lumen")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
