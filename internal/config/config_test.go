package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 5, cfg.ShutdownTimeout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NOTEDIR_ADDR", "127.0.0.1:9090")
	t.Setenv("NOTEDIR_DB", "/tmp/test.db")
	t.Setenv("NOTEDIR_LOG_FORMAT", "json")
	t.Setenv("NOTEDIR_SHUTDOWN_TIMEOUT", "30")

	cfg := LoadConfig()

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30, cfg.ShutdownTimeout)
}

func TestLoadConfig_InvalidShutdownTimeoutIgnored(t *testing.T) {
	t.Setenv("NOTEDIR_SHUTDOWN_TIMEOUT", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 5, cfg.ShutdownTimeout)
}
