package models

// MConfig Structure
type MConfig struct {
	Name      string           `yaml:"name"`
	Host      string           `yaml:"host"`
	Port      int              `yaml:"port"`
	LogLevel  string           `yaml:"log_level"`
	GrpcHost  string           `yaml:"grpc_host"`
	GrpcPort  int              `yaml:"grpc_port"`
	Storage   MStorageConfig   `yaml:"storage"`
	Network   MNetworkConfig   `yaml:"network"`
	Providers MProvidersConfig `yaml:"providers"`
	News      MNewsConfig      `yaml:"news"`
	Market    MMarketConfig    `yaml:"market"`
	Featured  MFeaturedConfig  `yaml:"featured"`
	Refresher MRefresherConfig `yaml:"refresher"`
	Events    MEventsConfig    `yaml:"events"`
	Generator MGeneratorConfig `yaml:"generator"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"` // none | sqlite | postgres
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
	DataRetentionDays  int    `yaml:"data_retention_days"`
}

type MNetworkConfig struct {
	ProxiesEnabled     bool     `yaml:"proxies_enabled"`
	Proxies            []string `yaml:"proxies"`
	RequestTimeout     int      `yaml:"timeout"`
	MaxRetries         int      `yaml:"retries"`
	ConcurrentRequests int      `yaml:"concurrent_requests"`
	UserAgent          string   `yaml:"user_agent"`
}

type MProvidersConfig struct {
	// Order is the quote fallback chain, first valid quote wins.
	Order        []string        `yaml:"order"`
	Finnhub      MProviderConfig `yaml:"finnhub"`
	AlphaVantage MProviderConfig `yaml:"alphavantage"`
	Yahoo        MProviderConfig `yaml:"yahoo"`
}

type MProviderConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type MNewsConfig struct {
	Symbols        []string `yaml:"symbols"`
	LookbackDays   int      `yaml:"lookback_days"`
	ExcerptLength  int      `yaml:"excerpt_length"`
	RefreshOnStart bool     `yaml:"refresh_on_start"`
	// KeepOnEmpty keeps the current articles when a refresh fetches nothing.
	KeepOnEmpty    bool     `yaml:"keep_on_empty"`
}

type MMarketConfig struct {
	RecomputeOnRead bool `yaml:"recompute_on_read"`
}

type MFeaturedConfig struct {
	Policy         string   `yaml:"policy"` // top_by_yield | curated
	Threshold      float64  `yaml:"threshold"`
	Count          int      `yaml:"count"`
	Tickers        []string `yaml:"tickers"`
	OverlayTickers []string `yaml:"overlay_tickers"`
	TopPerformers  int      `yaml:"top_performers"`
}

type MRefresherConfig struct {
	Enabled           bool   `yaml:"enabled"`
	IntervalSeconds   int    `yaml:"interval_seconds"`
	NewsEvery         int    `yaml:"news_every"`
	IgnoreMarketHours bool   `yaml:"ignore_market_hours"`
	CalendarSymbol    string `yaml:"calendar_symbol"`
}

type MEventsConfig struct {
	RedisURL string `yaml:"redis_url"`
	Channel  string `yaml:"channel"`
}

type MGeneratorConfig struct {
	Seed int64 `yaml:"seed"` // 0 means time-based
}
