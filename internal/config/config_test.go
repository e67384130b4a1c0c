package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("NAA_ADDR")
	os.Unsetenv("NAA_DEFAULT_FLUX")
	os.Unsetenv("NAA_LOG_LEVEL")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 1e13, cfg.DefaultFluxNCm2S)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadReadsOverrides(t *testing.T) {
	os.Setenv("NAA_ADDR", ":9090")
	os.Setenv("NAA_DEFAULT_DEPTH", "9")
	os.Setenv("NAA_LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("NAA_ADDR")
		os.Unsetenv("NAA_DEFAULT_DEPTH")
		os.Unsetenv("NAA_LOG_LEVEL")
	}()

	cfg := Load()
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, 9, cfg.DefaultDepth)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	os.Setenv("NAA_DEFAULT_DEPTH", "not-a-number")
	defer os.Unsetenv("NAA_DEFAULT_DEPTH")

	assert.Equal(t, 6, getEnvInt("NAA_DEFAULT_DEPTH", 6))
}
