// Package config loads planner settings from YAML.
//
//	log_level: warn
//	unreachable_penalty: 100
//	terrain:
//	  fire: {move: 2, weight: 20}
//	  bog:  {move: 3, weight: 6}
//
// Terrain entries override the stock table per terrain name; omitted
// terrains keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tacmove/logger"
	"github.com/katalvlaran/tacmove/terrain"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultUnreachablePenalty scales the Manhattan fallback heuristic for
// tiles the flow field could not reach.
const DefaultUnreachablePenalty = 100.0

// Config holds tunable planner settings.
type Config struct {
	LogLevel           string                  `yaml:"log_level"`
	UnreachablePenalty float64                 `yaml:"unreachable_penalty"`
	Terrain            map[string]terrain.Cost `yaml:"terrain,omitempty"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		LogLevel:           "warn",
		UnreachablePenalty: DefaultUnreachablePenalty,
	}
}

// Load reads and parses a YAML file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log level, the penalty and every terrain entry.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
		}
	}
	if !(c.UnreachablePenalty > 0) {
		return fmt.Errorf("%w: unreachable_penalty must be > 0, got %g", ErrInvalidConfig, c.UnreachablePenalty)
	}
	if _, err := c.Model(); err != nil {
		return fmt.Errorf("%w: terrain: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Model builds the terrain cost model described by the config.
func (c Config) Model() (*terrain.Model, error) {
	tbl, err := terrain.TableFromNames(c.Terrain)
	if err != nil {
		return nil, err
	}
	return terrain.NewModel(tbl)
}

// Apply pushes process-wide settings (the log level) into the logger.
func (c Config) Apply() error {
	if c.LogLevel == "" {
		return nil
	}
	return logger.SetLevel(c.LogLevel)
}

// Marshal renders the config back to YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
