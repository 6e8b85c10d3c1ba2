// Package config holds run settings and loads them from YAML or HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// DefaultInput is the input file read when none is given.
const DefaultInput = "Input1.txt"

var (
	// ErrInvalidConfig indicates a setting with an unsupported value.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrUnsupportedFile indicates a config file extension that cannot be decoded.
	ErrUnsupportedFile = errors.New("config: unsupported config file type")
)

// Config is the full set of run settings.
type Config struct {
	Input     string `yaml:"input" hcl:"input,optional"`
	Top       int    `yaml:"top" hcl:"top,optional"`
	Format    string `yaml:"format" hcl:"format,optional"`
	LogLevel  string `yaml:"log_level" hcl:"log_level,optional"`
	LogFormat string `yaml:"log_format" hcl:"log_format,optional"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Input:     DefaultInput,
		Top:       3,
		Format:    "text",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks every field and normalizes case.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	}
	if c.Top < 1 {
		return fmt.Errorf("%w: top must be at least 1, got %d", ErrInvalidConfig, c.Top)
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: format must be 'text', 'json' or 'yaml', got %q", ErrInvalidConfig, c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be 'debug', 'info', 'warn' or 'error', got %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// LoadFile overlays the settings in path onto base. Fields the file leaves
// unset keep their base values. YAML (.yaml, .yml) is decoded with yaml.v3;
// HCL and its JSON form (.hcl, .json) with hclsimple.
func LoadFile(path string, base Config) (Config, error) {
	var file Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return base, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return base, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".hcl", ".json":
		if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
			return base, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return base, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	return merge(base, file), nil
}

// merge copies every non-zero field of over onto base.
func merge(base, over Config) Config {
	if over.Input != "" {
		base.Input = over.Input
	}
	if over.Top != 0 {
		base.Top = over.Top
	}
	if over.Format != "" {
		base.Format = over.Format
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.LogFormat != "" {
		base.LogFormat = over.LogFormat
	}
	return base
}
