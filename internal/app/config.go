package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/vk/hyprshade/internal/xdg"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is an explicit configuration file or directory. When empty
	// the default file is used if it exists.
	ConfigPath string

	LogFormat string
	LogLevel  string

	// Getenv resolves environment variables; os.Getenv when nil.
	Getenv xdg.Getenv
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Getenv == nil {
		cfg.Getenv = os.Getenv
	}
	return &cfg, nil
}
