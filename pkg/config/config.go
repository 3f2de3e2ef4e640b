// Package config loads the optional planar.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chazu/planar/pkg/engine"
	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/kernel"
)

// FileName is the settings file looked up by LoadOptional.
const FileName = "planar.yaml"

// Config represents the planar.yaml configuration. Zero fields fall back
// to the defaults of the package that consumes them.
type Config struct {
	Tolerance   float64       `yaml:"tolerance,omitempty"`
	EvalTimeout time.Duration `yaml:"eval_timeout,omitempty"`
	SampleCells int           `yaml:"sample_cells,omitempty"`
	LogLevel    string        `yaml:"log_level,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Tolerance:   float64(geom.DefaultTolerance),
		EvalTimeout: engine.DefaultEvalTimeout,
		SampleCells: kernel.DefaultCells,
		LogLevel:    "warn",
	}
}

// Load reads the YAML file at path and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadOptional reads planar.yaml from dir if present, otherwise returns
// the defaults.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Tolerance == 0 {
		c.Tolerance = def.Tolerance
	}
	if c.EvalTimeout == 0 {
		c.EvalTimeout = def.EvalTimeout
	}
	if c.SampleCells == 0 {
		c.SampleCells = def.SampleCells
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance %g must not be negative", c.Tolerance)
	}
	if c.EvalTimeout < 0 {
		return fmt.Errorf("eval_timeout %s must not be negative", c.EvalTimeout)
	}
	if c.SampleCells < 0 {
		return fmt.Errorf("sample_cells %d must not be negative", c.SampleCells)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level means warn.
func (c *Config) Level() (slog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// EngineOptions returns the engine options these settings select.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithTolerance(geom.Tolerance(c.Tolerance)),
		engine.WithTimeout(c.EvalTimeout),
	}
}
