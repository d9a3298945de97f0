package config

import (
	"fmt"
	"os"
	"strconv"

	"preferred-observer/src/helpers"
	"preferred-observer/src/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the YAML file.
const (
	EnvFinnhubKey      = "FINNHUB_API_KEY"
	EnvAlphaVantageKey = "ALPHA_VANTAGE_API_KEY"
	EnvPort            = "PORT"
	EnvRedisURL        = "REDIS_URL"
	EnvDatabaseURL     = "DATABASE_URL"

	demoAPIKey = "demo"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// Default returns the configuration used when a key is absent from the file.
func Default() *models.MConfig {
	return &models.MConfig{
		Name:     "preferred-observer",
		Host:     "0.0.0.0",
		Port:     5000,
		LogLevel: "info",
		GrpcHost: "0.0.0.0",
		GrpcPort: 0,
		Storage: models.MStorageConfig{
			DBType:            "none",
			DBPath:            "preferred_observer.db",
			DataRetentionDays: 7,
		},
		Network: models.MNetworkConfig{
			RequestTimeout:     10,
			MaxRetries:         0,
			ConcurrentRequests: 6,
		},
		Providers: models.MProvidersConfig{
			Order: []string{"finnhub", "alphavantage"},
			Finnhub: models.MProviderConfig{
				Enabled: true,
				BaseURL: "https://finnhub.io/api/v1",
			},
			AlphaVantage: models.MProviderConfig{
				Enabled: true,
				BaseURL: "https://www.alphavantage.co",
			},
			Yahoo: models.MProviderConfig{
				Enabled: false,
				BaseURL: "https://query1.finance.yahoo.com",
			},
		},
		News: models.MNewsConfig{
			Symbols:        []string{"BAC", "JPM", "WFC", "GS", "MS", "C"},
			LookbackDays:   30,
			ExcerptLength:  200,
			RefreshOnStart: true,
		},
		Market: models.MMarketConfig{
			RecomputeOnRead: true,
		},
		Featured: models.MFeaturedConfig{
			Policy:         "top_by_yield",
			Threshold:      6.0,
			Count:          6,
			OverlayTickers: []string{"BAC-PB", "JPM-PA", "WFC-PC", "GS-PA", "MS-PA", "C-PB"},
			TopPerformers:  10,
		},
		Refresher: models.MRefresherConfig{
			Enabled:         false,
			IntervalSeconds: 300,
			NewsEvery:       6,
			CalendarSymbol:  "SPY",
		},
		Events: models.MEventsConfig{
			Channel: "preferred:events",
		},
	}
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	modelConfig := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, helpers.NewConfigurationError(fmt.Sprintf("failed to read config file '%s'", configPath), err)
		}
		if err := yaml.Unmarshal(data, modelConfig); err != nil {
			return nil, helpers.NewConfigurationError("failed to parse config from YAML", err)
		}
	}

	config := &Config{MConfig: modelConfig}
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, helpers.NewConfigurationError("config validation failed", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvFinnhubKey); v != "" {
		c.Providers.Finnhub.APIKey = v
	}
	if v := os.Getenv(EnvAlphaVantageKey); v != "" {
		c.Providers.AlphaVantage.APIKey = v
	}
	if c.Providers.Finnhub.APIKey == "" {
		c.Providers.Finnhub.APIKey = demoAPIKey
	}
	if c.Providers.AlphaVantage.APIKey == "" {
		c.Providers.AlphaVantage.APIKey = demoAPIKey
	}

	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.Events.RedisURL = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.Storage.DBType = "postgres"
		c.Storage.DBConnectionString = v
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}
	if c.GrpcPort != 0 && (c.GrpcPort <= 1024 || c.GrpcPort > 65535) {
		return fmt.Errorf("invalid grpc port number: %d", c.GrpcPort)
	}

	switch c.Storage.DBType {
	case "", "none":
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("database path cannot be empty for sqlite")
		}
	case "postgres":
		if c.Storage.DBConnectionString == "" {
			return fmt.Errorf("connection string cannot be empty for postgres")
		}
	default:
		return fmt.Errorf("unknown database type '%s'", c.Storage.DBType)
	}
	if c.Storage.DataRetentionDays <= 0 {
		return fmt.Errorf("data retention days must be greater than 0")
	}

	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Network.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}
	if c.Network.ConcurrentRequests <= 0 {
		return fmt.Errorf("concurrent requests must be greater than 0")
	}

	for _, name := range c.Providers.Order {
		switch name {
		case "finnhub", "alphavantage", "yahoo":
		default:
			return fmt.Errorf("unknown quote provider '%s'", name)
		}
	}

	switch c.Featured.Policy {
	case "top_by_yield":
		if c.Featured.Count <= 0 {
			return fmt.Errorf("featured count must be greater than 0")
		}
	case "curated":
		if len(c.Featured.Tickers) == 0 {
			return fmt.Errorf("curated featured policy needs at least one ticker")
		}
	default:
		return fmt.Errorf("unknown featured policy '%s'", c.Featured.Policy)
	}
	if c.Featured.TopPerformers <= 0 {
		return fmt.Errorf("top performers count must be greater than 0")
	}

	if c.News.LookbackDays <= 0 {
		return fmt.Errorf("news lookback days must be greater than 0")
	}
	if c.News.ExcerptLength <= 0 {
		return fmt.Errorf("news excerpt length must be greater than 0")
	}

	if c.Refresher.Enabled && c.Refresher.IntervalSeconds <= 0 {
		return fmt.Errorf("refresher interval must be greater than 0")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
