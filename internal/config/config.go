// Package config handles loading taskman.toml configuration files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nhaseem/taskman/internal/paths"
)

// Config represents the taskman.toml configuration file.
type Config struct {
	Org  Org  `toml:"org"`
	Data Data `toml:"data"`
}

// Org contains the organization lines printed at the top of reports.
type Org struct {
	// Name replaces the default report heading.
	Name string `toml:"name"`

	// Lines are printed below the heading, one per line.
	Lines []string `toml:"lines"`
}

// Data contains storage-related configuration.
type Data struct {
	// Dir overrides the default data directory.
	Dir string `toml:"dir"`
}

// Load loads configuration from the user's config file.
// Returns an empty config if the file does not exist.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.Org.Name = strings.TrimSpace(cfg.Org.Name)
	cfg.Data.Dir = strings.TrimSpace(cfg.Data.Dir)
	return &cfg, nil
}
