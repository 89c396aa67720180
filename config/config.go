package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Built-in defaults.
const (
	DefaultAdvantage  = "Advantage_system4.1"
	DefaultAdvantage2 = "Advantage2_system1.2"
	DefaultPrecision  = 128
	DefaultNumReads   = 1000
	DefaultBins       = 50
	DefaultSolverDir  = "solvers"
	DefaultLogLevel   = "info"
)

// Config is the YAML-backed application configuration.
type Config struct {
	DefaultAdvantage  string `yaml:"default_advantage"`
	DefaultAdvantage2 string `yaml:"default_advantage2"`
	PrecisionOptions  []int  `yaml:"precision_options"`
	PrecisionDefault  int    `yaml:"precision_default"`
	NumReads          int    `yaml:"num_reads"`
	Bins              int    `yaml:"bins"`
	SolverDir         string `yaml:"solver_dir"`
	LogLevel          string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := make([]int, 11)
	for n := range opts {
		opts[n] = 1 << n
	}

	return &Config{
		DefaultAdvantage:  DefaultAdvantage,
		DefaultAdvantage2: DefaultAdvantage2,
		PrecisionOptions:  opts,
		PrecisionDefault:  DefaultPrecision,
		NumReads:          DefaultNumReads,
		Bins:              DefaultBins,
		SolverDir:         DefaultSolverDir,
		LogLevel:          DefaultLogLevel,
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r over Default() and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if len(bytes.TrimSpace(raw)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every constraint violation at once.
func (c *Config) Validate() error {
	var errs error
	if c.DefaultAdvantage == "" {
		errs = multierr.Append(errs, errors.New("default_advantage is empty"))
	}
	if c.DefaultAdvantage2 == "" {
		errs = multierr.Append(errs, errors.New("default_advantage2 is empty"))
	}
	if len(c.PrecisionOptions) == 0 {
		errs = multierr.Append(errs, errors.New("precision_options is empty"))
	}
	for _, p := range c.PrecisionOptions {
		if p < 1 {
			errs = multierr.Append(errs, fmt.Errorf("precision option %d is not positive", p))
		}
	}
	if !slices.Contains(c.PrecisionOptions, c.PrecisionDefault) {
		errs = multierr.Append(errs, fmt.Errorf("precision_default %d is not in precision_options", c.PrecisionDefault))
	}
	if c.NumReads < 1 {
		errs = multierr.Append(errs, fmt.Errorf("num_reads %d must be positive", c.NumReads))
	}
	if c.Bins < 1 {
		errs = multierr.Append(errs, fmt.Errorf("bins %d must be positive", c.Bins))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("log_level: %v", err))
	}
	if errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, errs)
	}

	return nil
}

// Level returns the parsed log level, or info when unparsable.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
