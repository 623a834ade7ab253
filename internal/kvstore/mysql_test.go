package kvstore

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLBackendRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT v, version FROM kv_entries WHERE k=? LIMIT 1")).
		WithArgs("settings").
		WillReturnRows(sqlmock.NewRows([]string{"v", "version"}).AddRow([]byte(`{"theme":"dark"}`), int64(4)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT v, version FROM kv_entries WHERE k=? LIMIT 1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"v", "version"}))

	b := NewMySQLBackend(db)
	data, version, err := b.Read(context.Background(), "settings")
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, string(data))
	assert.Equal(t, int64(4), version)

	_, _, err = b.Read(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLBackendInsertsFirstVersion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM kv_entries WHERE k=? FOR UPDATE")).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_entries (k, v, version) VALUES (?,?,?)")).
		WithArgs("users", []byte(`{}`), int64(1)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	v, err := NewMySQLBackend(db).Write(context.Background(), "users", []byte(`{}`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLBackendRejectsStaleVersion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM kv_entries WHERE k=? FOR UPDATE")).
		WithArgs("cart").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(3)))
	mock.ExpectRollback()

	_, err = NewMySQLBackend(db).Write(context.Background(), "cart", []byte(`{}`), 2)
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLBackendUpdatesExistingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM kv_entries WHERE k=? FOR UPDATE")).
		WithArgs("cart").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(3)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE kv_entries SET v=?, version=? WHERE k=?")).
		WithArgs([]byte(`{"a":1}`), int64(4), "cart").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	v, err := NewMySQLBackend(db).Write(context.Background(), "cart", []byte(`{"a":1}`), AnyVersion)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}
