package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/faultline-terrain/internal/terrain"
)

// Load loads configuration with priority: defaults < file < flags.
// The merged terrain section is validated before it is returned.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		if configPath != "" {
			return nil, fmt.Errorf("config %s: %w", configPath, err)
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the terrain section describes a buildable terrain.
func (c *Config) Validate() error {
	if err := c.TerrainParams().Validate(); err != nil {
		return fmt.Errorf("terrain section: %w", err)
	}
	if c.Terrain.Iterations < 0 {
		return fmt.Errorf("terrain section: %w: iterations=%d", terrain.ErrInvalidIterations, c.Terrain.Iterations)
	}
	if d := float64(c.Terrain.Delta); !(d >= 0) || math.IsInf(d, 1) {
		return fmt.Errorf("terrain section: %w: delta=%v", terrain.ErrInvalidDelta, c.Terrain.Delta)
	}
	return nil
}

// findConfigFile returns the first terraingen.yaml found in the working
// directory or the user config directory.
func findConfigFile() string {
	candidates := []string{
		"terraingen.yaml",
		filepath.Join(ConfigDir(), "terraingen.yaml"),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
// On Linux this honors XDG_CONFIG_HOME.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "terraingen")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "terraingen")
}

// loadFromFile merges a YAML file into cfg. Unknown keys are rejected so a
// misspelled terrain field does not silently fall back to its default.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
