package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the teardown plan from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}

	// Set defaults
	for i := range cfg.Phases {
		for j := range cfg.Phases[i].Kinds {
			if cfg.Phases[i].Kinds[j].Version == "" {
				cfg.Phases[i].Kinds[j].Version = "v1alpha1"
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &cfg, nil
}

// Load returns the plan from path, or the built-in default when path is
// empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
