package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/vaultpass-tools/internal/config"
)

func testConfig() config.Config {
	return config.Config{Env: "test", LogLevel: slog.LevelError, Length: 12, Count: 1}
}

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func passwordLines(out string) []string {
	var pws []string
	for _, line := range strings.Split(out, "\n") {
		if _, pw, ok := strings.Cut(line, ". "); ok && !strings.HasPrefix(line, " ") {
			pws = append(pws, pw)
		}
	}
	return pws
}

func TestRootCmdDefaults(t *testing.T) {
	out, err := run(t, testConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "Generated 1 password(s):")
	pws := passwordLines(out)
	require.Len(t, pws, 1)
	assert.Len(t, pws[0], 12)
}

func TestRootCmdFlags(t *testing.T) {
	out, err := run(t, testConfig(), "-l", "20", "-c", "3", "--no-symbols", "--no-uppercase")
	require.NoError(t, err)

	pws := passwordLines(out)
	require.Len(t, pws, 3)
	for _, pw := range pws {
		assert.Len(t, pw, 20)
		for _, c := range pw {
			assert.True(t, (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'), "unexpected %q in %q", c, pw)
		}
	}
}

func TestRootCmdConfigDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.Length = 30
	cfg.Count = 2

	out, err := run(t, cfg, "--length=8")
	require.NoError(t, err)

	pws := passwordLines(out)
	require.Len(t, pws, 2)
	assert.Len(t, pws[0], 8)
}

func TestRootCmdAllCategoriesDisabled(t *testing.T) {
	out, err := run(t, testConfig(), "--no-uppercase", "--no-lowercase", "--no-digits", "--no-symbols")
	require.NoError(t, err, "validation errors are reported, not returned")
	assert.True(t, strings.HasPrefix(out, "Error: "), "got %q", out)
	assert.NotContains(t, out, "Generated")
}

func TestRootCmdLengthTooShort(t *testing.T) {
	out, err := run(t, testConfig(), "--length", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: ")
}

func TestRootCmdBadFlag(t *testing.T) {
	_, err := run(t, testConfig(), "--length", "many")
	assert.Error(t, err)
}

func TestRootCmdZeroCount(t *testing.T) {
	out, err := run(t, testConfig(), "--count", "0", "--length", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 0 password(s):")
	assert.NotContains(t, out, "Error:")
}
