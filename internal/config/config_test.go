package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1e-10, cfg.Engine.Tolerance)
	assert.False(t, cfg.Engine.Strict)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9999
  rate_limit_rps: 10
engine:
  tolerance: 1e-8
  strict: true
limits:
  max_vectors: 16
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitRPS)
	assert.Equal(t, 1e-8, cfg.Engine.Tolerance)
	assert.True(t, cfg.Engine.Strict)
	assert.Equal(t, 16, cfg.Limits.MaxVectors)
	// Untouched sections keep defaults.
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 4096, cfg.Limits.MaxDimension)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: ["))
	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"negative tolerance", func(c *Config) { c.Engine.Tolerance = -1 }},
		{"zero max vectors", func(c *Config) { c.Limits.MaxVectors = 0 }},
		{"zero max dimension", func(c *Config) { c.Limits.MaxDimension = 0 }},
		{"zero rps", func(c *Config) { c.Server.RateLimitRPS = 0 }},
		{"zero burst", func(c *Config) { c.Server.RateLimitBurst = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orthoserve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
