package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"preferred-observer/src/config"
	"preferred-observer/src/generator"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

// -----------------------------------------------------------------------------

func TestResolveSeed(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(7), resolveSeed(7, 42))
	require.Equal(t, int64(42), resolveSeed(0, 42))
	require.NotZero(t, resolveSeed(0, 0))
}

func TestConfigInitThenShow(t *testing.T) {
	t.Setenv(config.EnvPort, "")
	t.Setenv(config.EnvDatabaseURL, "")

	// Arrange
	path := filepath.Join(t.TempDir(), "observer.yaml")

	// Act
	initOut := execute(t, "config", "init", path)
	showOut := execute(t, "--config", path, "config", "show")

	// Assert
	require.Contains(t, initOut, path)
	_, err := os.Stat(path)
	require.NoError(t, err)
	require.Contains(t, showOut, "name: preferred-observer")
	require.Contains(t, showOut, "keep_on_empty: false")
}

func TestGenerateUsesSeed(t *testing.T) {
	t.Setenv(config.EnvPort, "")
	t.Setenv(config.EnvDatabaseURL, "")

	path := filepath.Join(t.TempDir(), "observer.yaml")
	execute(t, "config", "init", path)

	raw := execute(t, "--config", path, "--seed", "42", "generate", "--news")

	var out struct {
		Seed   int64             `json:"seed"`
		Stocks []json.RawMessage `json:"stocks"`
		News   []json.RawMessage `json:"news"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	require.Equal(t, int64(42), out.Seed)
	require.Len(t, out.Stocks, len(generator.Tickers()))
	require.NotEmpty(t, out.News)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	require.Contains(t, execute(t, "version"), "preferred-observer "+version)
}
