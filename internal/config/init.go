package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the path the config file is created at when
// none exists yet: $XDG_CONFIG_HOME/mapembed/config.yaml, falling back to
// ~/.config/mapembed/config.yaml.
func DefaultConfigPath() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "mapembed", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "mapembed", "config.yaml"), nil
}

// EnsureConfigExists creates a config file with template if it doesn't exist
func EnsureConfigExists(configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil // Config exists, nothing to do
	}

	// Create config directory if needed
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write template config
	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}

	return nil
}
