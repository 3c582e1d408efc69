// Package sqlstore keeps the world state in a single SQL table through
// database/sql. SQLite (modernc.org/sqlite) and MySQL (go-sql-driver/mysql)
// are supported; they differ only in DDL and upsert syntax.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"assettransfer/internal/core/ports"

	_ "github.com/go-sql-driver/mysql" // mysql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

var _ ports.Store = (*Store)(nil)

// Dialect is the SQL flavour a Store speaks.
type Dialect struct {
	Driver string
	schema string
	upsert string
}

var (
	// SQLite compares TEXT with memcmp by default, which gives byte-wise key order.
	SQLite = Dialect{
		Driver: "sqlite",
		schema: `CREATE TABLE IF NOT EXISTS world_state (
			state_key   TEXT PRIMARY KEY,
			state_value BLOB NOT NULL
		)`,
		upsert: `INSERT INTO world_state (state_key, state_value) VALUES (?, ?)
			ON CONFLICT(state_key) DO UPDATE SET state_value = excluded.state_value`,
	}

	// MySQL stores keys as VARBINARY so ordering ignores collations.
	MySQL = Dialect{
		Driver: "mysql",
		schema: `CREATE TABLE IF NOT EXISTS world_state (
			state_key   VARBINARY(512) NOT NULL PRIMARY KEY,
			state_value LONGBLOB NOT NULL
		)`,
		upsert: `INSERT INTO world_state (state_key, state_value) VALUES (?, ?)
			ON DUPLICATE KEY UPDATE state_value = VALUES(state_value)`,
	}
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store implements ports.Store on the world_state table.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to dsn with the dialect's driver and creates the table.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect.Driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect.Driver, err)
	}

	s := NewStore(db, dialect)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.schema); err != nil {
		return fmt.Errorf("create world_state table: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT state_value FROM world_state WHERE state_key = ?`, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.put(ctx, s.db, key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return remove(ctx, s.db, key)
}

func (s *Store) ScanRange(ctx context.Context, start, end string) ([]ports.KeyValue, error) {
	query := `SELECT state_key, state_value FROM world_state WHERE 1 = 1`
	var args []any
	if start != "" {
		query += ` AND state_key >= ?`
		args = append(args, start)
	}
	if end != "" {
		query += ` AND state_key < ?`
		args = append(args, end)
	}
	query += ` ORDER BY state_key`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scan [%q, %q): %w", start, end, err)
	}
	defer func() { _ = rows.Close() }()

	var entries []ports.KeyValue
	for rows.Next() {
		var (
			key   []byte
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		entries = append(entries, ports.KeyValue{Key: string(key), Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan [%q, %q): %w", start, end, err)
	}
	return entries, nil
}

func (s *Store) Apply(ctx context.Context, mutations []ports.Mutation) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, m := range mutations {
		switch m.Op {
		case ports.OpPut:
			err = s.put(ctx, tx, m.Key, m.Value)
		case ports.OpDelete:
			err = remove(ctx, tx, m.Key)
		default:
			err = fmt.Errorf("apply %q: unsupported operation %s", m.Key, m.Op)
		}
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) put(ctx context.Context, db execer, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, s.dialect.upsert, key, value); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func remove(ctx context.Context, db execer, key string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM world_state WHERE state_key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
