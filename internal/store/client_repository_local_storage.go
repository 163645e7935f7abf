package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/exo-explorer/internal/logger"
)

const (
	localStorageTable = "local_storage"

	// maxWriteAttempts bounds retries of writes that failed with a
	// Retryable driver error.
	maxWriteAttempts = 3
)

var retryDelay = 50 * time.Millisecond

type localStorageRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorage {
	return &localStorageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localStorageRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := r.db.builder().
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "localStorageRepository.Get").
			Str("key", key).
			Msg("failed to read local storage value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *localStorageRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := r.db.builder().
		Insert(localStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execWithRetry(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "localStorageRepository.Set").
			Str("key", key).
			Msg("failed to write local storage value")
		return err
	}

	return nil
}

func (r *localStorageRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := r.db.builder().
		Delete(localStorageTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execWithRetry(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "localStorageRepository.Delete").
			Strs("keys", keys).
			Msg("failed to delete local storage values")
		return err
	}

	return nil
}

// execWithRetry runs a write statement, retrying while the driver reports a
// transient failure.
func (r *localStorageRepository) execWithRetry(ctx context.Context, query string, args ...any) error {
	var err error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		if _, err = r.db.ExecContext(ctx, query, args...); err == nil {
			return nil
		}
		if r.db.errorClassificator == nil || r.db.errorClassificator.Classify(err) != Retryable {
			break
		}

		r.logger.Warn().
			Str("func", "localStorageRepository.execWithRetry").
			Int("attempt", attempt).
			Msg("retryable storage error")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
		case <-time.After(retryDelay):
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
