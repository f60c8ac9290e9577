// Package config reads server configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration for the notedir server.
type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	LogFormat       string // "json" or "console"
	ShutdownTimeout int    // seconds
}

// DefaultConfig returns a Config with sensible defaults. The database
// lives under the user's home directory unless overridden.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Addr:            ":8080",
		DBPath:          filepath.Join(home, ".notedir", "notedir.db"),
		LogLevel:        "info",
		LogFormat:       "console",
		ShutdownTimeout: 5,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NOTEDIR_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NOTEDIR_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NOTEDIR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NOTEDIR_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("NOTEDIR_SHUTDOWN_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShutdownTimeout = n
		}
	}

	return cfg
}
