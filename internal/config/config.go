// Package config loads and validates tsgraph.config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the tsgraph configuration.
type Config struct {
	// Project is the tsconfig.json path the program is built from.
	Project string `json:"project,omitempty"`

	Entries EntriesConfig `json:"entries"`
	Output  OutputConfig  `json:"output"`
}

// EntriesConfig selects which source files contribute entry points to the
// graph. Include/Exclude are path globs with ** support.
type EntriesConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude,omitempty"`
}

// OutputConfig specifies where and how the type graph is written.
type OutputConfig struct {
	Path   string `json:"path"`
	Pretty bool   `json:"pretty,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Project: "tsconfig.json",
		Entries: EntriesConfig{
			Include: []string{"src/**/*.ts"},
		},
		Output: OutputConfig{
			Path: "dist/typegraph.json",
		},
	}
}

// Load reads and parses a tsgraph config file. JSON only; fields missing
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &config, nil
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("project must not be empty")
	}

	if len(c.Entries.Include) == 0 {
		return fmt.Errorf("entries.include must have at least one pattern")
	}

	if c.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty")
	}

	// The graph is always JSON; catch extension typos early.
	ext := filepath.Ext(c.Output.Path)
	if ext != ".json" {
		return fmt.Errorf("output.path must have a .json extension, got %q", ext)
	}

	return nil
}
