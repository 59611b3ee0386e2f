// Package config provides environment-driven configuration for the pipeline checker.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values.
type Config struct {
	Port                 string
	ListenHost           string
	MetricsPort          string
	CORSOrigins          []string
	CORSAllowCredentials bool
	CORSAllowHeaders     []string
	LogLevel             string
	LogFormat            string
	MaxBodyBytes         int64
	MaxGraphElements     int
	RateLimit            float64
	RateBurst            int
	HSTS                 bool
	ShutdownTimeout      time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 envOrDefault("PORT", "8000"),
		ListenHost:           envOrDefault("LISTEN_HOST", "127.0.0.1"),
		MetricsPort:          envOrDefault("METRICS_PORT", "9091"),
		CORSAllowCredentials: envOrDefault("CORS_ALLOW_CREDENTIALS", "true") == "true",
		LogLevel:             envOrDefault("LOG_LEVEL", "info"),
		LogFormat:            envOrDefault("LOG_FORMAT", "json"),
		HSTS:                 envOrDefault("ENABLE_HSTS", "false") == "true",
	}

	var err error

	if cfg.MaxBodyBytes, err = strconv.ParseInt(envOrDefault("MAX_BODY_BYTES", "10485760"), 10, 64); err != nil {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be an integer: %w", err)
	}

	if cfg.MaxGraphElements, err = strconv.Atoi(envOrDefault("MAX_GRAPH_ELEMENTS", "100000")); err != nil {
		return nil, fmt.Errorf("MAX_GRAPH_ELEMENTS must be an integer: %w", err)
	}

	if cfg.RateLimit, err = strconv.ParseFloat(envOrDefault("RATE_LIMIT", "100"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT must be a number: %w", err)
	}

	if cfg.RateBurst, err = strconv.Atoi(envOrDefault("RATE_BURST", "200")); err != nil {
		return nil, fmt.Errorf("RATE_BURST must be an integer: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(envOrDefault("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be a duration: %w", err)
	}

	cfg.CORSOrigins = splitList(envOrDefault("CORS_ORIGINS", "http://localhost:3000"))
	cfg.CORSAllowHeaders = splitList(envOrDefault("CORS_ALLOW_HEADERS", "Content-Type,Authorization"))

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the API listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// MetricsAddr returns the metrics listen address in host:port format.
func (c *Config) MetricsAddr() string {
	return c.ListenHost + ":" + c.MetricsPort
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
