package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to mateline's configuration directory:
// ~/.mateline/. Returns an error if the home directory cannot be
// determined.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mateline"), nil
}

// getConfigFilePath returns the full path to the engine configuration
// file.
func getConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "engine.toml"), nil
}

// GetConfigPath returns the absolute path to the engine configuration
// file: ~/.mateline/engine.toml.
func GetConfigPath() (string, error) {
	return getConfigFilePath()
}
