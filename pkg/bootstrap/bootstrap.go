// Package bootstrap wires configuration and logging for the ftracker
// binaries.
package bootstrap

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds standard configuration for all binaries.
type Config struct {
	LogLevel  slog.Level
	InputPath string
}

// LoadConfig reads configuration from a .env file (when present) and the
// environment.
func LoadConfig() *Config {
	// A missing .env file is fine; plain env vars still apply.
	_ = godotenv.Load()

	logLevelStr := os.Getenv("LOG_LEVEL")
	var level slog.Level
	switch strings.ToLower(logLevelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return &Config{
		LogLevel:  level,
		InputPath: os.Getenv("FTRACKER_INPUT"),
	}
}

// NewLogger creates a configured logger instance and installs it as the
// default. Log output goes to stderr so rendered summaries on stdout
// stay clean.
func NewLogger(serviceName string, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)
	return logger
}
