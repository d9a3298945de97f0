package storage

import (
	"database/sql"
	"fmt"
	"time"

	"preferred-observer/src/helpers"
	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

// SQLiteArchive keeps the quote and snapshot audit trail in a local file.
type SQLiteArchive struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSQLiteArchive(cfg *models.MConfig, log *logger.Logger) *SQLiteArchive {
	return &SQLiteArchive{
		Config: cfg,
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

func (d *SQLiteArchive) Initialize() error {
	db, err := sql.Open("sqlite", d.Config.Storage.DBPath)
	if err != nil {
		return helpers.NewDatabaseError("open sqlite", err)
	}
	if err := db.Ping(); err != nil {
		return helpers.NewDatabaseError("ping sqlite", err)
	}
	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	if err := d.createTables(); err != nil {
		return err
	}
	d.Logger.Info("SQLite archive ready at %s", d.Config.Storage.DBPath)
	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteArchive) createTables() error {
	query := `
		CREATE TABLE IF NOT EXISTS quotes (
			symbol TEXT,
			timestamp INTEGER,
			price REAL,
			change REAL,
			change_percent REAL,
			last_trade INTEGER,
			provider TEXT
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create quotes: %w", err)
	}
	if _, err := d.DB.Exec("CREATE INDEX IF NOT EXISTS idx_quotes_symbol_ts ON quotes (symbol, timestamp)"); err != nil {
		return fmt.Errorf("failed to index quotes: %w", err)
	}

	query = `
		CREATE TABLE IF NOT EXISTS market_snapshots (
			timestamp INTEGER,
			sp500 REAL,
			sp500_change REAL,
			dow REAL,
			dow_change REAL,
			nasdaq REAL,
			nasdaq_change REAL,
			treasury10y REAL,
			treasury10y_change REAL,
			vix REAL,
			vix_change REAL,
			preferred_avg_yield REAL,
			preferred_avg_yield_change REAL,
			data_status TEXT
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create market_snapshots: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteArchive) SaveQuotes(quotes []models.MQuote) (err error) {
	if len(quotes) == 0 {
		return nil
	}
	start := time.Now()
	defer func() { metrics.ObserveDB("save_quotes", start, err) }()

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO quotes (symbol, timestamp, price, change, change_percent, last_trade, provider)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Unix()
	for _, q := range quotes {
		if _, err = stmt.Exec(q.Symbol, now, q.Price, q.Change, q.ChangePercent, q.LastTrade.UTC().Unix(), q.Provider); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// -----------------------------------------------------------------------------

func (d *SQLiteArchive) SaveMarketSnapshot(m models.MMarketData) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("save_snapshot", start, err) }()

	_, err = d.DB.Exec(`
		INSERT INTO market_snapshots (timestamp, sp500, sp500_change, dow, dow_change, nasdaq, nasdaq_change,
			treasury10y, treasury10y_change, vix, vix_change, preferred_avg_yield, preferred_avg_yield_change, data_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.UpdatedAt.UTC().Unix(), m.SP500, m.SP500Change, m.Dow, m.DowChange, m.Nasdaq, m.NasdaqChange,
		m.Treasury10y, m.Treasury10yChange, m.VIX, m.VIXChange, m.PreferredAvgYield, m.PreferredAvgYieldChange, m.DataStatus)
	return err
}

// -----------------------------------------------------------------------------

func (d *SQLiteArchive) CleanupOldData() error {
	days := retentionDays(d.Config)
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Unix()
	start := time.Now()

	d.Logger.Info("Cleaning up archive data older than %d days (timestamp < %d)", days, cutoff)

	var firstErr error
	for _, table := range []string{"quotes", "market_snapshots"} {
		if _, err := d.DB.Exec(fmt.Sprintf("DELETE FROM %s WHERE timestamp < ?", table), cutoff); err != nil {
			d.Logger.Error("Cleanup %s error: %v", table, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	metrics.ObserveDB("cleanup", start, firstErr)
	return firstErr
}

// -----------------------------------------------------------------------------

func (d *SQLiteArchive) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
