// Package config provides configuration management for typeworld using
// Viper, loading from YAML files, TYPEWORLD_-prefixed environment
// variables, and command-line flags, in that order of increasing
// precedence.
//
// Configuration covers the font search inputs (extra directories and
// files, whether system font directories are scanned) and logging. The
// resolution semantics themselves are not configurable.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/conneroisu/typeworld/internal/logging"
)

// Config is the root configuration.
type Config struct {
	// Root is the directory relative paths resolve against. Defaults to
	// the current working directory.
	Root  string      `mapstructure:"root"`
	Fonts FontsConfig `mapstructure:"fonts"`
	Log   LogConfig   `mapstructure:"log"`
}

// FontsConfig configures font discovery inputs.
type FontsConfig struct {
	// Paths are extra directories searched recursively for fonts.
	Paths []string `mapstructure:"paths"`
	// Files are individual font files indexed directly.
	Files []string `mapstructure:"files"`
	// IgnoreSystem disables scanning the platform font directories.
	IgnoreSystem bool `mapstructure:"ignore_system"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load builds the configuration from viper's current state, applying
// defaults and validating the result.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Viper's Unmarshal misses values set only through env or flags.
	if cfg.Root == "" {
		cfg.Root = viper.GetString("root")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = viper.GetString("log.level")
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = viper.GetString("log.format")
	}
	if len(cfg.Fonts.Paths) == 0 && viper.IsSet("fonts.paths") {
		cfg.Fonts.Paths = viper.GetStringSlice("fonts.paths")
	}
	if len(cfg.Fonts.Files) == 0 && viper.IsSet("fonts.files") {
		cfg.Fonts.Files = viper.GetStringSlice("fonts.files")
	}
	if viper.IsSet("fonts.ignore_system") {
		cfg.Fonts.IgnoreSystem = viper.GetBool("fonts.ignore_system")
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Logger constructs the structured logger described by the configuration.
func (c *Config) Logger() (logging.Logger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(&logging.Config{Level: level, Format: c.Log.Format}), nil
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q is not text or json", cfg.Log.Format)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}

	for _, p := range cfg.Fonts.Paths {
		if err := validatePath(p); err != nil {
			return fmt.Errorf("font path %q: %w", p, err)
		}
	}
	for _, p := range cfg.Fonts.Files {
		if err := validatePath(p); err != nil {
			return fmt.Errorf("font file %q: %w", p, err)
		}
	}
	return nil
}

// validatePath rejects empty and null-containing paths. Nonexistent paths
// are allowed: unusable font inputs are skipped during discovery, not
// treated as configuration errors.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains NUL byte")
	}
	if cleaned := filepath.Clean(path); cleaned == "" {
		return fmt.Errorf("path cleans to nothing")
	}
	return nil
}
