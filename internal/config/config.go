// Package config loads runtime settings from the environment and resolves
// the results directory argument.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings that can come from the environment (or a .env file).
// Command-line flags override them.
type Config struct {
	LogLevel  string `env:"LCSCORES_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFormat string `env:"LCSCORES_LOG_FORMAT" env-default:"text" env-description:"text or json"`
	Format    string `env:"LCSCORES_FORMAT" env-default:"csv" env-description:"report format: csv or yaml"`
}

// Load reads Config from environment variables, falling back to env-default tags.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the enum-like fields and lower-cases the formats.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "csv", "yaml":
	default:
		return fmt.Errorf("invalid format %q (use 'csv' or 'yaml')", c.Format)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (use 'text' or 'json')", c.LogFormat)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (use 'debug', 'info', 'warn' or 'error')", c.LogLevel)
	}

	c.Format = strings.ToLower(c.Format)
	c.LogFormat = strings.ToLower(c.LogFormat)
	return nil
}

// ResolveDir expands a leading "~", makes path absolute and checks that it is a directory.
func ResolveDir(path string) (string, error) {
	if path == "" {
		return "", errors.New("results directory must not be empty")
	}

	expanded, err := expandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("results directory not found: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", abs)
	}

	return abs, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand ~: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
