package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the full stackforge configuration
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Scaffold ScaffoldConfig `mapstructure:"scaffold"`
}

// CatalogConfig controls which catalog documents feed the skill matrix
type CatalogConfig struct {
	// Extends lists extension catalog files merged over the built-in
	// catalog, in order. Later files win at the whole-skill level.
	Extends []string `mapstructure:"extends"`
}

// ScaffoldConfig controls where and how projects are generated
type ScaffoldConfig struct {
	Dir      string `mapstructure:"dir"`      // default parent directory for new projects
	Manifest string `mapstructure:"manifest"` // manifest filename written into new projects
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := &Config{}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Scaffold.Dir == "" {
		cfg.Scaffold.Dir = "."
	}

	if cfg.Scaffold.Manifest == "" {
		cfg.Scaffold.Manifest = "stack.yaml"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if filepath.Base(c.Scaffold.Manifest) != c.Scaffold.Manifest {
		return fmt.Errorf("invalid manifest name: %s (must be a bare filename)", c.Scaffold.Manifest)
	}

	for _, path := range c.Catalog.Extends {
		if path == "" {
			return fmt.Errorf("catalog.extends contains an empty path")
		}
	}

	return nil
}
