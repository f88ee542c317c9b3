package config

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Analysis
	StoreBackend       string         // "memory" or "sqlite"
	Location           *time.Location // zone for date bounds and mistake timestamps
	ReportMistakeLimit int

	// Logging
	LogFormat string // "text" or "json"
	LogLevel  slog.Level
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:      getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout:    mustGetDuration("SHUTDOWN_TIMEOUT", "10s"),
		StoreBackend:       getenvDefault("STORE_BACKEND", "memory"),
		Location:           mustGetLocation("TIMEZONE", "Local"),
		ReportMistakeLimit: mustGetInt("REPORT_MISTAKE_LIMIT", 10),
		LogFormat:          getenvDefault("LOG_FORMAT", "text"),
		LogLevel:           mustGetLevel("LOG_LEVEL", "info"),
	}
}

func mustGetDuration(k, fallback string) time.Duration {
	v := getenvDefault(k, fallback)
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func mustGetInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}

func mustGetLocation(k, fallback string) *time.Location {
	v := getenvDefault(k, fallback)
	loc, err := time.LoadLocation(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a known time zone: %v", k, v, err)
	}
	return loc
}

func mustGetLevel(k, fallback string) slog.Level {
	v := getenvDefault(k, fallback)
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return lvl
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

// NewLogger builds the process logger described by the config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
