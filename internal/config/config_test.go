package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"ENV", "LOG_LEVEL", "PASSGEN_LENGTH", "PASSGEN_COUNT", "PASSGEN_SYMBOLS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, 12, cfg.Length)
	assert.Equal(t, 1, cfg.Count)
	assert.Empty(t, cfg.Symbols)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PASSGEN_LENGTH", " 24 ")
	t.Setenv("PASSGEN_COUNT", "3")
	t.Setenv("PASSGEN_SYMBOLS", "!?")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 24, cfg.Length)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, "!?", cfg.Symbols)
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("PASSGEN_LENGTH", "twelve")
	t.Setenv("PASSGEN_COUNT", "1.5")

	cfg := Load()

	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, 12, cfg.Length)
	assert.Equal(t, 1, cfg.Count)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PASSGEN_LENGTH=20\nPASSGEN_COUNT=4\n"), 0o600)
	assert.NoError(t, err)

	// godotenv never overrides variables that are already present, even empty ones.
	for _, key := range []string{"PASSGEN_LENGTH", "PASSGEN_COUNT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, 20, cfg.Length)
	assert.Equal(t, 4, cfg.Count)
}

func TestLoadWarningsUseConfiguredLogger(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PASSGEN_LENGTH", "twelve")

	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	prev := slog.Default()
	slog.SetDefault(NewLogger(&buf, level))
	t.Cleanup(func() { slog.SetDefault(prev) })

	Load()

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "key=PASSGEN_LENGTH")
}

func TestNewLoggerFollowsLevelVar(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := NewLogger(&buf, level)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	level.Set(slog.LevelDebug)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
