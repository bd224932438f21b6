package kvstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func newPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, func()) {
	db, mock, cleanup := newMock(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS local_storage").WillReturnResult(sqlmock.NewResult(0, 0))
	store, err := NewPostgresStore(context.Background(), db, "")
	require.NoError(t, err)
	return store, mock, cleanup
}

func TestPostgresStoreGet(t *testing.T) {
	store, mock, cleanup := newPostgresStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM local_storage WHERE key = $1")).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"1"}]`))

	got, err := store.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetMissing(t *testing.T) {
	store, mock, cleanup := newPostgresStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT value FROM local_storage").
		WithArgs("user").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := store.Get(context.Background(), "user")
	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSetUpserts(t *testing.T) {
	store, mock, cleanup := newPostgresStore(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO local_storage .* ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs("user", `{"id":"2"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Set(context.Background(), "user", []byte(`{"id":"2"}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreDelete(t *testing.T) {
	store, mock, cleanup := newPostgresStore(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_storage WHERE key = $1")).
		WithArgs("user").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), "user"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSurfacesDriverErrors(t *testing.T) {
	store, mock, cleanup := newPostgresStore(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO local_storage").WillReturnError(errors.New("connection reset"))

	err := store.Set(context.Background(), "user", []byte("{}"))
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestPostgresStoreRejectsBadTableName(t *testing.T) {
	db, _, cleanup := newMock(t)
	defer cleanup()

	_, err := NewPostgresStore(context.Background(), db, "kv; DROP TABLE users")
	assert.Error(t, err)
}
