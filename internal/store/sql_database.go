package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/migrations"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// DB is a *sql.DB bound to the driver it was opened with. The driver decides
// the placeholder format of generated queries, the goose dialect and the
// error classifier.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the local storage database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a squirrel statement builder using the placeholder format
// of the driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
