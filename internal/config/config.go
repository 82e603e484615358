// SPDX-License-Identifier: MIT

// Package config reads the lvinterp driver configuration file.
//
// The file is INI-style and parsed with gcfg. Every field has a default, so
// an empty file (or no file at all) is valid.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/gcfg.v1"
)

// ExampleConfigFile documents every recognized variable.
const ExampleConfigFile = `[Output]

# Number of digits printed after the decimal point.
Precision = 6

# Print step sizes and per-interval spline coefficients.
Coefficients = true

[Lagrange]

# Demo dataset name or path to a .yaml / .txt sample file.
Dataset = lnpow
# Query point.
Point = 6.5
# Extra probe points for the error estimate. 0 probes the knots only.
ProbeGrid = 0

[Spline]

Dataset = squares
Point = 2.5

[Log]

# One of debug, info, warn, error.
Level = info`

// OutputConfig controls console formatting.
type OutputConfig struct {
	Precision    int `validate:"gte=0,lte=17"`
	Coefficients bool
}

// LagrangeConfig holds defaults for the lagrange command.
type LagrangeConfig struct {
	Dataset   string `validate:"required"`
	Point     float64
	ProbeGrid int `validate:"gte=0"`
}

// SplineConfig holds defaults for the spline command.
type SplineConfig struct {
	Dataset string `validate:"required"`
	Point   float64
}

// LogConfig selects the slog level.
type LogConfig struct {
	Level string
}

// Config is the whole driver configuration.
type Config struct {
	Output   OutputConfig
	Lagrange LagrangeConfig
	Spline   SplineConfig
	Log      LogConfig
}

// Default returns the configuration used when no file is given. It matches
// ExampleConfigFile.
func Default() Config {
	return Config{
		Output:   OutputConfig{Precision: 6, Coefficients: true},
		Lagrange: LagrangeConfig{Dataset: "lnpow", Point: 6.5},
		Spline:   SplineConfig{Dataset: "squares", Point: 2.5},
		Log:      LogConfig{Level: "info"},
	}
}

// Read parses the file at path on top of Default and validates the result.
func Read(path string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadFileInto(&cfg, path); err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// ReadString is Read for an in-memory file body.
func ReadString(body string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(&cfg, body); err != nil {
		return Config{}, fmt.Errorf("config: parsing: %w", err)
	}

	return cfg, cfg.Validate()
}

var validate = validator.New()

// Validate checks value ranges that gcfg cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", name)
	}
}
