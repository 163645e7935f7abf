package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/exo-explorer/internal/logger"
)

func newTestLocalStorageRepo(t *testing.T, driver string) (*localStorageRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if driver == DriverPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	l := logger.Nop()
	repo := &localStorageRepository{
		db:     &DB{DB: db, driver: driver, errorClassificator: classifier, logger: l},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestLocalStorage_Get_Success(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t, DriverSQLite)

	mock.ExpectQuery(`SELECT value FROM local_storage WHERE key = \?`).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("jwt"))

	value, err := repo.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "jwt", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_Get_PostgresPlaceholders(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t, DriverPostgres)

	mock.ExpectQuery(`SELECT value FROM local_storage WHERE key = \$1`).
		WithArgs("theme").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("dark"))

	value, err := repo.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_Get_NotFound(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t, DriverSQLite)

	mock.ExpectQuery(`SELECT value FROM local_storage`).
		WithArgs("user").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestLocalStorage_Get_QueryError(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t, DriverSQLite)

	mock.ExpectQuery(`SELECT value FROM local_storage`).
		WithArgs("user").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background(), "user")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLocalStorage_Set_Upserts(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t, DriverSQLite)

	mock.ExpectExec(`INSERT INTO local_storage .* ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("language", "fr").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), "language", "fr"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_Set_RetriesTransientErrors(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = old })

	repo, mock := newTestLocalStorageRepo(t, DriverPostgres)

	mock.ExpectExec(`INSERT INTO local_storage`).
		WithArgs("token", "jwt").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec(`INSERT INTO local_storage`).
		WithArgs("token", "jwt").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), "token", "jwt"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_Set_GivesUpAfterMaxAttempts(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = old })

	repo, mock := newTestLocalStorageRepo(t, DriverPostgres)

	for i := 0; i < maxWriteAttempts; i++ {
		mock.ExpectExec(`INSERT INTO local_storage`).
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	err := repo.Set(context.Background(), "token", "jwt")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_Set_NonRetryableFailsOnce(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t, DriverPostgres)

	mock.ExpectExec(`INSERT INTO local_storage`).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := repo.Set(context.Background(), "token", "jwt")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_Delete(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t, DriverSQLite)

	mock.ExpectExec(`DELETE FROM local_storage WHERE key IN \(\?,\?\)`).
		WithArgs("user", "token").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Delete(context.Background(), "user", "token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_Delete_NoKeys(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t, DriverSQLite)

	require.NoError(t, repo.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
