package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Table holds one row per key.
const Table = "kv_state"

// SQLStore persists payloads in the kv_state table of a relational
// database. The same statements serve PostgreSQL and SQLite; only the
// placeholder format differs.
type SQLStore struct {
	db *sql.DB
	qb sq.StatementBuilderType
}

// NewPostgresStore returns a store using $N placeholders.
func NewPostgresStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

// NewSQLiteStore returns a store using ? placeholders.
func NewSQLiteStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, qb: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.qb.Select("payload").From(Table).Where(sq.Eq{"bucket": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	var payload string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := s.qb.Insert(Table).
		Columns("bucket", "payload").
		Values(key, string(value)).
		Suffix("ON CONFLICT (bucket) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	query, args, err := s.qb.Delete(Table).Where(sq.Eq{"bucket": key}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}
