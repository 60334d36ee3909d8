package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// psqlbuilder squirrel builder с плейсхолдерами $1, $2... для PostgreSQL
var psqlbuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// PostgresStore key-value хранилище поверх одной таблицы PostgreSQL
//
//	CREATE TABLE kv_entries (
//	    key        TEXT PRIMARY KEY,
//	    value      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	)
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore создает хранилище и таблицу kv_entries, если её нет
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("%w: NewPostgresStore - create table: %v", ErrExecQuery, err)
	}

	return &PostgresStore{db: db}, nil
}

// Load возвращает значение по ключу
func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From("kv_entries").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Save записывает значение по ключу (upsert)
func (s *PostgresStore) Save(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert("kv_entries").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Remove удаляет ключ
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete("kv_entries").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// Keys возвращает все присутствующие ключи
func (s *PostgresStore) Keys(ctx context.Context) ([]string, error) {
	query, args, err := psqlbuilder.Select("key").
		From("kv_entries").
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: Keys - scan key: %v", ErrScanRow, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Keys - iterate rows: %v", ErrExecQuery, err)
	}

	return keys, nil
}

// ClearAll удаляет все ключи
func (s *PostgresStore) ClearAll(ctx context.Context) error {
	query, args, err := psqlbuilder.Delete("kv_entries").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ClearAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ClearAll - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
