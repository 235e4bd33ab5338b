package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// config holds the runtime settings sourced from the environment. Everything
// has a sensible default; a .env file in the working directory is honored
// when present.
type config struct {
	LogLevel      slog.Level
	TruncateLimit int // 0 means the flattener's default
}

func loadConfig() config {
	_ = godotenv.Load() // .env is optional

	cfg := config{LogLevel: slog.LevelInfo}

	switch strings.ToLower(os.Getenv("FEEDAUDIT_LOG_LEVEL")) {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	}

	if v := os.Getenv("FEEDAUDIT_TRUNCATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TruncateLimit = n
		}
	}

	return cfg
}
