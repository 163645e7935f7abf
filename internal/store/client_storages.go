package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// LocalStorage holds the session credential, the mirrored user record
	// and the UI preferences.
	LocalStorage LocalStorage

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a connection for cfg.DB.Driver (sqlite3 creates the database
//     file if it does not yet exist).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [LocalStorage] repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("local storage connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalStorage: NewLocalStorageRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
