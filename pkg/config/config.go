package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds environment driven settings for the API server.
type Config struct {
	Addr     string
	Host     string
	LogLevel slog.Level

	// JWTSecret protects statistics endpoints when set.
	JWTSecret string

	// BookBaseURL is prepended to ISBN-10s when no base URL is given in a request.
	BookBaseURL string

	Tracing TracingConfig
}

// TracingConfig controls the OTLP trace exporter.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

// Load builds a Config from the environment, reading a .env file first when present.
func Load() *Config {
	_ = godotenv.Load()

	addr := ":80"
	if port, hasPort := os.LookupEnv("API_PORT"); hasPort {
		addr = ":" + port
	}

	host := "http://localhost"
	if hostEnv, hasHost := os.LookupEnv("API_HOST"); hasHost {
		host = hostEnv
	} else {
		host += addr
	}

	return &Config{
		Addr:        addr,
		Host:        host,
		LogLevel:    ParseLogLevel(os.Getenv("LOG_LEVEL")),
		JWTSecret:   os.Getenv("ISBN_JWT_SECRET"),
		BookBaseURL: strings.TrimSpace(os.Getenv("ISBN_BOOK_BASE_URL")),
		Tracing: TracingConfig{
			Enabled:     os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
			ServiceName: firstNonEmpty(os.Getenv("OTEL_SERVICE_NAME"), "isbn-api"),
		},
	}
}

// ParseLogLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
