// Package config loads the asmname tool configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	formats   = []string{FormatText, FormatYAML, FormatJSON}
	colors    = []string{ColorAuto, ColorAlways, ColorNever}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the tool configuration.
type Config struct {
	StrictUTF8        bool   `yaml:"strict_utf8"`
	IncludeUnexported bool   `yaml:"include_unexported"`
	Format            string `yaml:"format"`
	Color             string `yaml:"color"`
	LogLevel          string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Format == "" {
		c.Format = FormatText
	}

	if c.Color == "" {
		c.Color = ColorAuto
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(formats, c.Format) {
		errs = append(errs, fmt.Errorf("%w: format %q (want one of %v)", ErrInvalid, c.Format, formats))
	}

	if !slices.Contains(colors, c.Color) {
		errs = append(errs, fmt.Errorf("%w: color %q (want one of %v)", ErrInvalid, c.Color, colors))
	}

	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("%w: log_level %q (want one of %v)", ErrInvalid, c.LogLevel, logLevels))
	}

	return errors.Join(errs...)
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return l
}
