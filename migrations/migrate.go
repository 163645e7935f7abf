// Package migrations holds the embedded goose migrations of the client's
// local key/value storage.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// gooseDialects maps database/sql driver names to goose dialects.
var gooseDialects = map[string]string{
	"sqlite3": "sqlite3",
	"pgx":     "postgres",
}

// Migrate applies every pending migration to db. driver is the database/sql
// driver name the connection was opened with.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
