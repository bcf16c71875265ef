package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/config"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	Verbose     bool
	Output      string
	ConfigFile  string
	LogLevel    string
	LogFormat   string
	Solver      string
	Workers     int
	Timeout     time.Duration
	MetricsFile string
}

// RegisterGlobalFlags registers persistent flags on the root command.
// Defaults mirror config.Default; only flags set explicitly override the
// config file and the environment.
func RegisterGlobalFlags(cmd *cobra.Command, f *GlobalFlags) {
	def := config.Default()
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&f.Verbose, "verbose", "v", false, "Print graph analysis and run summary to stderr")
	pf.StringVarP(&f.Output, "output", "o", def.Output, "Output format (text|json)")
	pf.StringVar(&f.ConfigFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&f.LogLevel, "log-level", def.LogLevel, "Log level (debug|info|warn|error)")
	pf.StringVar(&f.LogFormat, "log-format", def.LogFormat, "Log format (text|json)")
	pf.StringVarP(&f.Solver, "solver", "s", def.Solver, "Solver (auto|original|parallel|advanced|exhaustive|bounded|adaptive)")
	pf.IntVarP(&f.Workers, "workers", "w", def.Workers, "Parallel search workers")
	pf.DurationVarP(&f.Timeout, "timeout", "t", def.Timeout, "Solve timeout; 0 disables it")
	pf.StringVar(&f.MetricsFile, "metrics-file", "", "Write a Prometheus textfile snapshot here after the run")
}

// resolveConfig layers defaults, the optional config file, the environment
// and finally the explicitly set flags.
func resolveConfig(cmd *cobra.Command, f *GlobalFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.ConfigFile != "" {
		loaded, err := config.Load(f.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errConfig, err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = lower(f.Output)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = lower(f.LogLevel)
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = lower(f.LogFormat)
	}
	if flags.Changed("solver") {
		cfg.Solver = lower(f.Solver)
	}
	if flags.Changed("workers") {
		cfg.Workers = f.Workers
	}
	if flags.Changed("timeout") {
		cfg.Timeout = f.Timeout
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = f.MetricsFile
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}

	return cfg, nil
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
