package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration for cityatlas.
//
// Example file:
//
//	[routes]
//	directed = false
//	default_weight = 1.0
//
//	[render]
//	format = "svg"
//	cache_dir = "~/.cache/cityatlas"
type Config struct {
	Routes RoutesConfig `toml:"routes"`
	Render RenderConfig `toml:"render"`
}

// RoutesConfig controls how city route graphs are created.
type RoutesConfig struct {
	// Directed makes all route graphs one-way.
	Directed bool `toml:"directed"`
	// DefaultWeight is used when a route is added without a weight.
	DefaultWeight float64 `toml:"default_weight"`
}

// RenderConfig controls the render command.
type RenderConfig struct {
	// Format is the default output format: dot, svg or png.
	Format string `toml:"format"`
	// CacheDir overrides the artifact cache location; empty uses the
	// user cache directory. "off" disables caching.
	CacheDir string `toml:"cache_dir"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Routes: RoutesConfig{DefaultWeight: 1.0},
		Render: RenderConfig{Format: "svg"},
	}
}

// LoadConfig reads and validates a TOML config file. Missing keys keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Routes.DefaultWeight < 0 {
		return cfg, fmt.Errorf("config %s: default_weight must be non-negative", path)
	}
	switch cfg.Render.Format {
	case "dot", "svg", "png":
	default:
		return cfg, fmt.Errorf("config %s: unknown render format %q", path, cfg.Render.Format)
	}
	return cfg, nil
}
