// SPDX-License-Identifier: MIT

// Package config provides configuration loading for the hyperbolic command.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
	"github.com/katalvlaran/hyperbolic/internal/logging"
)

// Environment variables that override file values.
const (
	EnvBoundaryEpsilon = "HYPERBOLIC_BOUNDARY_EPSILON"
	EnvStabilizer      = "HYPERBOLIC_STABILIZER"
	EnvArccoshPolicy   = "HYPERBOLIC_ARCCOSH_POLICY"
	EnvLogLevel        = "HYPERBOLIC_LOG_LEVEL"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config contains all settings of the hyperbolic command.
type Config struct {
	// Hyperbolic holds the numeric stabilizers of the geometry routines.
	Hyperbolic HyperbolicConfig `json:"hyperbolic" yaml:"hyperbolic"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// HyperbolicConfig mirrors the hyperbolic.With* options.
type HyperbolicConfig struct {
	// BoundaryEpsilon is ε: ball points are kept at norm ≤ 1−ε. Range (0, 1).
	BoundaryEpsilon float64 `json:"boundary_epsilon" yaml:"boundary_epsilon"`

	// Stabilizer is δ, added to −⟨u,v⟩ before arccosh. Must be ≥ 0.
	Stabilizer float64 `json:"stabilizer" yaml:"stabilizer"`

	// ArccoshPolicy is "clamp" (default) or "strict".
	ArccoshPolicy string `json:"arccosh_policy" yaml:"arccosh_policy"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "trace", "debug", "info" (default), "warn" or "error".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config holding the library defaults.
func Default() *Config {
	return &Config{
		Hyperbolic: HyperbolicConfig{
			BoundaryEpsilon: hyperbolic.DefaultBoundaryEpsilon,
			Stabilizer:      hyperbolic.DefaultStabilizer,
			ArccoshPolicy:   hyperbolic.DefaultArccoshPolicy.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load resolves the effective configuration.
// Order: defaults -> YAML file at path (skipped when path is "") -> environment variables.
// The result is validated.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
// Keys missing from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	eps := c.Hyperbolic.BoundaryEpsilon
	if math.IsNaN(eps) || eps <= 0 || eps >= 1 {
		return fmt.Errorf("boundary_epsilon must be in (0, 1), got %g: %w", eps, ErrInvalidConfig)
	}

	delta := c.Hyperbolic.Stabilizer
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return fmt.Errorf("stabilizer must be finite and non-negative, got %g: %w", delta, ErrInvalidConfig)
	}

	if _, err := hyperbolic.ParseArccoshPolicy(c.Hyperbolic.ArccoshPolicy); err != nil {
		return fmt.Errorf("arccosh_policy (valid: clamp, strict): %w: %w", err, ErrInvalidConfig)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error): %w",
			c.Logging.Level, ErrInvalidConfig)
	}

	return nil
}

// HyperbolicOptions converts a validated Config into library options.
// logger may be nil for silent operation.
func (c *Config) HyperbolicOptions(logger *slog.Logger) ([]hyperbolic.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	policy, err := hyperbolic.ParseArccoshPolicy(c.Hyperbolic.ArccoshPolicy)
	if err != nil {
		return nil, err
	}

	return []hyperbolic.Option{
		hyperbolic.WithBoundaryEpsilon(c.Hyperbolic.BoundaryEpsilon),
		hyperbolic.WithStabilizer(c.Hyperbolic.Stabilizer),
		hyperbolic.WithArccoshPolicy(policy),
		hyperbolic.WithLogger(logger),
	}, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Unlike string settings, numeric overrides that fail to parse are reported.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv(EnvBoundaryEpsilon); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBoundaryEpsilon, err)
		}
		config.Hyperbolic.BoundaryEpsilon = f
	}

	if v := os.Getenv(EnvStabilizer); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStabilizer, err)
		}
		config.Hyperbolic.Stabilizer = f
	}

	if v := os.Getenv(EnvArccoshPolicy); v != "" {
		config.Hyperbolic.ArccoshPolicy = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}

	return nil
}
