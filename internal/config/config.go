// Package config handles terraingen configuration loading and management.
package config

import "github.com/Faultbox/faultline-terrain/internal/terrain"

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds grid and fault-line settings.
type TerrainConfig struct {
	Div        int     `yaml:"div"`
	MinX       float32 `yaml:"min_x"`
	MaxX       float32 `yaml:"max_x"`
	MinY       float32 `yaml:"min_y"`
	MaxY       float32 `yaml:"max_y"`
	Iterations int     `yaml:"iterations"`
	Delta      float32 `yaml:"delta"`
	Seed       uint64  `yaml:"seed"` // 0 picks a random seed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Div:        64,
			MinX:       -0.5,
			MaxX:       0.5,
			MinY:       -0.5,
			MaxY:       0.5,
			Iterations: terrain.DefaultIterations,
			Delta:      terrain.DefaultDelta,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// TerrainParams returns the construction parameters described by the config.
func (c *Config) TerrainParams() terrain.Params {
	return terrain.Params{
		Div:  c.Terrain.Div,
		MinX: c.Terrain.MinX,
		MaxX: c.Terrain.MaxX,
		MinY: c.Terrain.MinY,
		MaxY: c.Terrain.MaxY,
	}
}

// TerrainOptions returns the fault-line options described by the config.
func (c *Config) TerrainOptions() []terrain.Option {
	opts := []terrain.Option{
		terrain.WithIterations(c.Terrain.Iterations),
		terrain.WithDelta(c.Terrain.Delta),
	}
	if c.Terrain.Seed != 0 {
		opts = append(opts, terrain.WithSeed(c.Terrain.Seed))
	}
	return opts
}
