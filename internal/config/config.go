// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvStorePath is the environment variable overriding the store location.
const EnvStorePath = "PLACEMENT_STORE"

// defaultStoreFile is placed under the user's home directory when no path
// is configured.
const defaultStoreFile = ".placement-readiness/history.db"

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	StorePath string `json:"store_path,omitempty"` // Path to the SQLite store file
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed analysis output
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ResolveStorePath picks the store path with flag > env > config > default
// precedence.
func ResolveStorePath(flagValue string, cfg *Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvStorePath); env != "" {
		return env, nil
	}
	if cfg != nil && cfg.StorePath != "" {
		return cfg.StorePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultStoreFile), nil
}
