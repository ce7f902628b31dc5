package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel slog.Level

	// passgen defaults, overridden by flags.
	Length  int
	Count   int
	Symbols string
}

// Load reads configuration from the environment, after loading a .env file when one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read .env file, using environment variables", "error", err)
	}

	return Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: parseLevel(getEnv("LOG_LEVEL", "warn")),
		Length:   getEnvInt("PASSGEN_LENGTH", 12),
		Count:    getEnvInt("PASSGEN_COUNT", 1),
		Symbols:  os.Getenv("PASSGEN_SYMBOLS"),
	}
}

// NewLogger returns a text logger writing to w. Passing a *slog.LevelVar lets the
// level change after Load without rebuilding the logger.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("ignoring malformed integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		slog.Warn("unknown LOG_LEVEL, defaulting to warn", "value", s)
		return slog.LevelWarn
	}
	return level
}
