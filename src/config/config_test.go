package config

import (
	"os"
	"path/filepath"
	"testing"

	"preferred-observer/src/helpers"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigAppliesDefaults(t *testing.T) {
	t.Setenv(EnvFinnhubKey, "")
	t.Setenv(EnvAlphaVantageKey, "")
	t.Setenv(EnvPort, "")
	t.Setenv(EnvRedisURL, "")
	t.Setenv(EnvDatabaseURL, "")

	path := writeConfig(t, "name: test-observer\nport: 8080\n")

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	require.Equal(t, "test-observer", cfg.Name)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "demo", cfg.Providers.Finnhub.APIKey)
	require.Equal(t, "demo", cfg.Providers.AlphaVantage.APIKey)
	require.True(t, cfg.Market.RecomputeOnRead)
	require.Equal(t, []string{"finnhub", "alphavantage"}, cfg.Providers.Order)
	require.Equal(t, 10, cfg.Featured.TopPerformers)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv(EnvFinnhubKey, "fh-key")
	t.Setenv(EnvAlphaVantageKey, "av-key")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvDatabaseURL, "postgres://user@localhost/db")

	cfg, err := NewConfig(writeConfig(t, "market:\n  recompute_on_read: false\n"))
	require.NoError(t, err)

	require.Equal(t, "fh-key", cfg.Providers.Finnhub.APIKey)
	require.Equal(t, "av-key", cfg.Providers.AlphaVantage.APIKey)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "redis://localhost:6379/0", cfg.Events.RedisURL)
	require.Equal(t, "postgres", cfg.Storage.DBType)
	require.False(t, cfg.Market.RecomputeOnRead)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	var cfgErr *helpers.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewConfigRejectsInvalidFile(t *testing.T) {
	t.Setenv(EnvPort, "")

	_, err := NewConfig(writeConfig(t, "port: 80\n"))

	var cfgErr *helpers.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Contains(t, err.Error(), "config validation failed")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"low port", func(c *Config) { c.Port = 80 }},
		{"unknown provider", func(c *Config) { c.Providers.Order = []string{"bloomberg"} }},
		{"unknown policy", func(c *Config) { c.Featured.Policy = "random" }},
		{"empty curated", func(c *Config) { c.Featured.Policy = "curated"; c.Featured.Tickers = nil }},
		{"sqlite without path", func(c *Config) { c.Storage.DBType = "sqlite"; c.Storage.DBPath = "" }},
		{"negative retries", func(c *Config) { c.Network.MaxRetries = -1 }},
		{"unknown db", func(c *Config) { c.Storage.DBType = "mongo" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := &Config{MConfig: Default()}
			tc.mutate(c)
			require.Error(t, c.Validate())
		})
	}

	require.NoError(t, (&Config{MConfig: Default()}).Validate())
}

func TestSaveRoundTripsThroughNewConfig(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvDatabaseURL, "")

	c := &Config{MConfig: Default()}
	c.Name = "saved"
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, c.Save(path))

	loaded, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, "saved", loaded.Name)
}
