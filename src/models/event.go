package models

// Event types pushed to websocket clients and the redis channel.
const (
	EventStockUpserted = "stock.upserted"
	EventStockUpdated  = "stock.updated"
	EventNewsCreated   = "news.created"
	EventNewsRefreshed = "news.refreshed"
	EventMarketUpdated = "market.updated"
)

// MEvent Structure
type MEvent struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Ticker    string      `json:"ticker,omitempty"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// MSubscribeCommand is sent by websocket clients to filter event types.
type MSubscribeCommand struct {
	Command string   `json:"command"`
	Types   []string `json:"types"`
	Tickers []string `json:"tickers"`
}
