package storage

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"preferred-observer/src/helpers"
	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"

	_ "github.com/lib/pq"
)

var unsafeSchemaChars = regexp.MustCompile(`[^a-z0-9_]`)

// -----------------------------------------------------------------------------

// PostgresArchive writes the audit trail into a schema named after the service.
type PostgresArchive struct {
	Config *models.MConfig
	DB     *sql.DB
	Schema string
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresArchive(cfg *models.MConfig, log *logger.Logger) *PostgresArchive {
	return &PostgresArchive{
		Config: cfg,
		Schema: SchemaName(cfg.Name),
		Logger: log,
	}
}

// SchemaName lowercases name and replaces anything outside [a-z0-9_].
func SchemaName(name string) string {
	s := unsafeSchemaChars.ReplaceAllString(strings.ToLower(name), "_")
	if s == "" {
		return "preferred_observer"
	}
	return s
}

// -----------------------------------------------------------------------------

func (d *PostgresArchive) Initialize() error {
	db, err := sql.Open("postgres", d.Config.Storage.DBConnectionString)
	if err != nil {
		return helpers.NewDatabaseError("open postgres", err)
	}
	if err := db.Ping(); err != nil {
		return helpers.NewDatabaseError("ping postgres", err)
	}
	d.DB = db

	if _, err := d.DB.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, d.Schema)); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", d.Schema, err)
	}
	if err := d.createTables(); err != nil {
		return err
	}

	d.Logger.Info("PostgresArchive initialized successfully (Schema: %s)", d.Schema)
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresArchive) table(name string) string {
	return fmt.Sprintf(`"%s"."%s"`, d.Schema, name)
}

func (d *PostgresArchive) createTables() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			symbol TEXT,
			timestamp BIGINT,
			price DOUBLE PRECISION,
			change DOUBLE PRECISION,
			change_percent DOUBLE PRECISION,
			last_trade BIGINT,
			provider TEXT
		);
	`, d.table("quotes"))
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create quotes: %w", err)
	}

	query = fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			timestamp BIGINT,
			sp500 DOUBLE PRECISION,
			sp500_change DOUBLE PRECISION,
			dow DOUBLE PRECISION,
			dow_change DOUBLE PRECISION,
			nasdaq DOUBLE PRECISION,
			nasdaq_change DOUBLE PRECISION,
			treasury10y DOUBLE PRECISION,
			treasury10y_change DOUBLE PRECISION,
			vix DOUBLE PRECISION,
			vix_change DOUBLE PRECISION,
			preferred_avg_yield DOUBLE PRECISION,
			preferred_avg_yield_change DOUBLE PRECISION,
			data_status TEXT
		);
	`, d.table("market_snapshots"))
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create market_snapshots: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresArchive) SaveQuotes(quotes []models.MQuote) (err error) {
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

	stmt, err := tx.Prepare(fmt.Sprintf(`
		INSERT INTO %s (symbol, timestamp, price, change, change_percent, last_trade, provider)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, d.table("quotes")))
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

func (d *PostgresArchive) SaveMarketSnapshot(m models.MMarketData) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("save_snapshot", start, err) }()

	_, err = d.DB.Exec(fmt.Sprintf(`
		INSERT INTO %s (timestamp, sp500, sp500_change, dow, dow_change, nasdaq, nasdaq_change,
			treasury10y, treasury10y_change, vix, vix_change, preferred_avg_yield, preferred_avg_yield_change, data_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, d.table("market_snapshots")), m.UpdatedAt.UTC().Unix(), m.SP500, m.SP500Change, m.Dow, m.DowChange, m.Nasdaq, m.NasdaqChange,
		m.Treasury10y, m.Treasury10yChange, m.VIX, m.VIXChange, m.PreferredAvgYield, m.PreferredAvgYieldChange, m.DataStatus)
	return err
}

// -----------------------------------------------------------------------------

func (d *PostgresArchive) CleanupOldData() error {
	days := retentionDays(d.Config)
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Unix()
	start := time.Now()

	d.Logger.Info("Cleaning up archive data older than %d days (timestamp < %d)", days, cutoff)

	var firstErr error
	for _, name := range []string{"quotes", "market_snapshots"} {
		if _, err := d.DB.Exec(fmt.Sprintf("DELETE FROM %s WHERE timestamp < $1", d.table(name)), cutoff); err != nil {
			d.Logger.Error("Cleanup %s error: %v", name, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	metrics.ObserveDB("cleanup", start, firstErr)
	return firstErr
}

// -----------------------------------------------------------------------------

func (d *PostgresArchive) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
