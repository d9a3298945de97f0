package interfaces

import "preferred-observer/src/models"

// -----------------------------------------------------------------------------
// IDatabase defines the contract for the quote and snapshot archive.
// -----------------------------------------------------------------------------

type IDatabase interface {

	// -----------------------------------------------------------------------------

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// SaveQuotes inserts a batch of live quotes.
	SaveQuotes(quotes []models.MQuote) error

	// -----------------------------------------------------------------------------

	// SaveMarketSnapshot appends a market snapshot.
	SaveMarketSnapshot(snapshot models.MMarketData) error

	// -----------------------------------------------------------------------------

	// CleanupOldData removes data older than the retention policy.
	CleanupOldData() error

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
