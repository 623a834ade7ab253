package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv_entries (
    k          VARCHAR(191) NOT NULL PRIMARY KEY,
    v          LONGBLOB     NOT NULL,
    version    BIGINT       NOT NULL,
    updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// MySQLBackend keeps documents in the kv_entries table. Conditional writes
// lock the row with SELECT ... FOR UPDATE inside a transaction.
type MySQLBackend struct{ DB *sql.DB }

func NewMySQLBackend(db *sql.DB) *MySQLBackend { return &MySQLBackend{DB: db} }

// EnsureSchema creates the kv_entries table when it does not exist.
func (b *MySQLBackend) EnsureSchema(ctx context.Context) error {
	_, err := b.DB.ExecContext(ctx, kvSchema)
	return err
}

func (b *MySQLBackend) Read(ctx context.Context, key string) ([]byte, int64, error) {
	var (
		data    []byte
		version int64
	)
	err := b.DB.QueryRowContext(ctx,
		"SELECT v, version FROM kv_entries WHERE k=? LIMIT 1", key).Scan(&data, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	return data, version, nil
}

func (b *MySQLBackend) Write(ctx context.Context, key string, data []byte, expect int64) (int64, error) {
	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var cur int64
	err = tx.QueryRowContext(ctx,
		"SELECT version FROM kv_entries WHERE k=? FOR UPDATE", key).Scan(&cur)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lock %s: %w", key, err)
	}
	if expect != AnyVersion && cur != expect {
		return cur, ErrVersionConflict
	}
	next := cur + 1
	if cur == 0 {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO kv_entries (k, v, version) VALUES (?,?,?)", key, data, next)
	} else {
		_, err = tx.ExecContext(ctx,
			"UPDATE kv_entries SET v=?, version=? WHERE k=?", data, next, key)
	}
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return next, nil
}

func (b *MySQLBackend) Delete(ctx context.Context, key string) error {
	_, err := b.DB.ExecContext(ctx, "DELETE FROM kv_entries WHERE k=?", key)
	return err
}
