// Package config loads and validates the orthoserve YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/basislab/orthoserve/internal/ortho"
)

// Config is the full orthoserve configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
	Limits LimitsConfig `yaml:"limits"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host                  string  `yaml:"host"`
	Port                  int     `yaml:"port"`
	ReadTimeoutSeconds    int     `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds   int     `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds    int     `yaml:"idle_timeout_seconds"`
	RequestTimeoutSeconds int     `yaml:"request_timeout_seconds"`
	RateLimitRPS          float64 `yaml:"rate_limit_rps"`   // token refill rate for compute endpoints
	RateLimitBurst        int     `yaml:"rate_limit_burst"` // token bucket size
}

// EngineConfig holds orthonormalization defaults. Per-request values in the
// API override these.
type EngineConfig struct {
	Tolerance float64 `yaml:"tolerance"` // dependence threshold, 0 means engine default
	Strict    bool    `yaml:"strict"`    // fail the whole request on a dependent vector
}

// LimitsConfig bounds input size before the engine runs. Orthonormalization
// is O(n^2 * d), so both axes are capped.
type LimitsConfig struct {
	MaxVectors   int `yaml:"max_vectors"`
	MaxDimension int `yaml:"max_dimension"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // trace, debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:                  "127.0.0.1",
			Port:                  8080,
			ReadTimeoutSeconds:    10,
			WriteTimeoutSeconds:   10,
			IdleTimeoutSeconds:    60,
			RequestTimeoutSeconds: 5,
			RateLimitRPS:          50,
			RateLimitBurst:        100,
		},
		Engine: EngineConfig{
			Tolerance: ortho.DefaultTolerance,
		},
		Limits: LimitsConfig{
			MaxVectors:   512,
			MaxDimension: 4096,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, layered over Default. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Engine.Tolerance < 0 {
		return fmt.Errorf("engine tolerance must be non-negative, got %g", c.Engine.Tolerance)
	}
	if c.Limits.MaxVectors <= 0 {
		return fmt.Errorf("max_vectors must be positive, got %d", c.Limits.MaxVectors)
	}
	if c.Limits.MaxDimension <= 0 {
		return fmt.Errorf("max_dimension must be positive, got %d", c.Limits.MaxDimension)
	}
	if c.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("rate_limit_rps must be positive, got %g", c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("rate_limit_burst must be positive, got %d", c.Server.RateLimitBurst)
	}
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}
	return nil
}

// ReadTimeout returns the server read timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout as a duration.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the server idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSeconds) * time.Second
}

// RequestTimeout returns the per-request timeout as a duration.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
