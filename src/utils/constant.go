package utils

// -----------------------------------------------------------------------------

// Market snapshot fields and the symbols backing them.
const (
	FieldSP500       = "sp500"
	FieldDow         = "dow"
	FieldNasdaq      = "nasdaq"
	FieldTreasury10y = "treasury10y"
	FieldVIX         = "vix"
)

// IndexFallback is the constant level/change used when an index has no live quote.
type IndexFallback struct {
	Field  string
	Symbol string
	Level  float64
	Change float64
}

// IndexFallbacks lists the snapshot indexes in display order.
var IndexFallbacks = []IndexFallback{
	{Field: FieldSP500, Symbol: "SPY", Level: 6259.74, Change: -0.33},
	{Field: FieldDow, Symbol: "DIA", Level: 44500.00, Change: -0.6},
	{Field: FieldNasdaq, Symbol: "QQQ", Level: 19850.00, Change: 0.2},
	{Field: FieldTreasury10y, Symbol: "^TNX", Level: 4.407, Change: 0.06},
	{Field: FieldVIX, Symbol: "VIX", Level: 16.40, Change: 3.93},
}

// Preferred average yield used when the store is empty, and its first change.
const (
	FallbackPreferredAvgYield       = 6.9
	FallbackPreferredAvgYieldChange = 0.15
)

// -----------------------------------------------------------------------------

// DefaultRetentionDays is the archive retention when none is configured.
const DefaultRetentionDays = 7
