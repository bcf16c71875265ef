// Package config loads and validates solver settings for the longpath CLI.
//
// Settings come from three layers, later ones winning: Default, an optional
// YAML file read by Load, and environment overrides applied by ApplyEnv. The
// CLI applies its flags last.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvLogLevel = "LOG_LEVEL"
	EnvSolver   = "LONGPATH_SOLVER"
	EnvWorkers  = "LONGPATH_WORKERS"
	EnvTimeout  = "LONGPATH_TIMEOUT"
)

// ErrConfigNil is returned by Validate for a nil *Config.
var ErrConfigNil = errors.New("config: configuration is nil")

// Config holds every tunable of a solve run.
type Config struct {
	// Solver is a strategy name accepted by longestpath.ParseStrategy.
	Solver string `yaml:"solver" validate:"oneof=auto exhaustive original parallel bounded adaptive advanced"`

	// Workers bounds the parallel search goroutines.
	Workers int `yaml:"workers" validate:"min=1,max=256"`

	// Timeout cancels the solve; zero disables it.
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	// Output selects the result rendering on stdout.
	Output string `yaml:"output" validate:"oneof=text json"`

	// MetricsFile, when set, receives a Prometheus textfile snapshot after the run.
	MetricsFile string `yaml:"metrics_file" validate:"omitempty,filepath"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Solver:    "auto",
		Workers:   4,
		Timeout:   5 * time.Minute,
		LogLevel:  "info",
		LogFormat: "text",
		Output:    "text",
	}
}

// Load reads a YAML file over the defaults and validates the result.
// Unknown keys are rejected. An empty file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode is Load over an arbitrary reader.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.normalize()
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with any set environment variable and revalidates.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvSolver); v != "" {
		c.Solver = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	c.normalize()

	return Validate(c)
}

// normalize lower-cases the enumerated string fields.
func (c *Config) normalize() {
	c.Solver = strings.ToLower(strings.TrimSpace(c.Solver))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
}

// Marshal renders cfg as YAML, e.g. for `longpath config` style dumps.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
