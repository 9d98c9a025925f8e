// Package config loads mstbench settings from the environment.
//
// Settings only shape diagnostics and self-checks; the benchmark sweep and
// its stdout format are fixed.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Prefix is the environment variable prefix, e.g. MSTBENCH_LOG_LEVEL.
const Prefix = "MSTBENCH"

// Log formats accepted by LOG_FORMAT.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrInvalidFormat indicates LOG_FORMAT is neither json nor console.
var ErrInvalidFormat = errors.New("config: invalid log format")

// ErrInvalidLevel indicates LOG_LEVEL is not a zerolog level name.
var ErrInvalidLevel = errors.New("config: invalid log level")

// Config holds environment-driven settings.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	Verify    bool   `envconfig:"VERIFY" default:"false"`
}

// Load reads Config from MSTBENCH_* variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the log level and format.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatJSON, FormatConsole:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.LogFormat)
	}
}

// Level parses LogLevel into a zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, c.LogLevel)
	}

	return lvl, nil
}

// Human reports whether the console writer was requested.
func (c Config) Human() bool {
	return strings.EqualFold(c.LogFormat, FormatConsole)
}
