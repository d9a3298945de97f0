package storage

import (
	"fmt"

	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"
	"preferred-observer/src/utils"
)

const (
	DBTypeNone     = "none"
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// New returns the archive selected by storage.db_type. The returned archive
// still needs Initialize.
func New(cfg *models.MConfig, log *logger.Logger) (interfaces.IDatabase, error) {
	switch cfg.Storage.DBType {
	case "", DBTypeNone:
		return Nop{}, nil
	case DBTypeSQLite:
		return NewSQLiteArchive(cfg, log), nil
	case DBTypePostgres:
		return NewPostgresArchive(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown db_type %q", cfg.Storage.DBType)
	}
}

// -----------------------------------------------------------------------------

// Nop is the archive used when persistence is disabled.
type Nop struct{}

func (Nop) Initialize() error                           { return nil }
func (Nop) SaveQuotes([]models.MQuote) error            { return nil }
func (Nop) SaveMarketSnapshot(models.MMarketData) error { return nil }
func (Nop) CleanupOldData() error                       { return nil }
func (Nop) Close() error                                { return nil }

// -----------------------------------------------------------------------------

func retentionDays(cfg *models.MConfig) int {
	if cfg.Storage.DataRetentionDays <= 0 {
		return utils.DefaultRetentionDays
	}
	return cfg.Storage.DataRetentionDays
}
