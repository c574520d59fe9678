package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 120
	DefaultHeight     = 68
	DefaultLayers     = 3
	DefaultOutputDir  = "hyprlock"
	DefaultOutputName = "matrix.png"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the immutable set of frame tunables, passed by value.
type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Layers     int    `yaml:"layers"`
	OutputDir  string `yaml:"output_dir"`
	OutputName string `yaml:"output_name"`
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	cfg, err := Parse(defaultsYAML)
	if err != nil {
		return Config{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Layers:     DefaultLayers,
			OutputDir:  DefaultOutputDir,
			OutputName: DefaultOutputName,
		}
	}
	return cfg
}

// Parse decodes YAML on top of the hard defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Layers:     DefaultLayers,
		OutputDir:  DefaultOutputDir,
		OutputName: DefaultOutputName,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Layers <= 0 {
		return fmt.Errorf("%w: %dx%d, %d layers", ErrInvalidGrid, c.Width, c.Height, c.Layers)
	}
	if c.OutputDir == "" || c.OutputName == "" {
		return ErrInvalidOutput
	}
	return nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// CacheDir resolves OutputDir against the user cache directory unless it is
// already absolute.
func (c Config) CacheDir() (string, error) {
	if filepath.IsAbs(c.OutputDir) {
		return c.OutputDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve cache dir: %w", err)
	}
	return filepath.Join(base, c.OutputDir), nil
}

// WithSize returns a copy with a different grid size.
func (c Config) WithSize(width, height, layers int) Config {
	c.Width = width
	c.Height = height
	c.Layers = layers
	return c
}
