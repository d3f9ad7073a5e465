package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds the full server configuration, read from the environment.
type Config struct {
	// Contentful
	Token         string
	Host          string
	GraphQLHost   string
	SpaceID       string
	EnvironmentID string
	HTTPTimeout   time.Duration

	// Transport
	Transport  string // stdio, sse or http
	ListenAddr string
	BaseURL    string

	// Refresh
	RefreshCron string

	// Logging
	LogLevel slog.Level
	Debug    bool
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Token:         os.Getenv("CONTENTFUL_MANAGEMENT_ACCESS_TOKEN"),
		Host:          os.Getenv("CONTENTFUL_HOST"),
		GraphQLHost:   os.Getenv("CONTENTFUL_GRAPHQL_HOST"),
		SpaceID:       os.Getenv("SPACE_ID"),
		EnvironmentID: os.Getenv("ENVIRONMENT_ID"),
		HTTPTimeout:   envDuration("HTTP_TIMEOUT", 30*time.Second),
		Transport:     envDefault("MCP_TRANSPORT", "stdio"),
		ListenAddr:    envDefault("MCP_LISTEN_ADDR", ":8989"),
		RefreshCron:   envDefault("AI_ACTION_REFRESH_CRON", "*/5 * * * *"),
		LogLevel:      parseLogLevel(os.Getenv("LOG_LEVEL")),
		Debug:         os.Getenv("DEBUG") == "true",
	}
	cfg.BaseURL = envDefault("MCP_BASE_URL", "http://localhost"+cfg.ListenAddr)

	if cfg.Token == "" {
		return nil, fmt.Errorf("CONTENTFUL_MANAGEMENT_ACCESS_TOKEN is required")
	}
	switch cfg.Transport {
	case "stdio", "sse", "http":
	default:
		return nil, fmt.Errorf("MCP_TRANSPORT must be stdio, sse or http, got %q", cfg.Transport)
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
