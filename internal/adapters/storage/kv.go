package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is the injectable key-value backend the collection stores persist
// through. Values are opaque blobs; each Set overwrites the whole value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// SQLiteKV implements KV over the kv table.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV creates a KV store backed by the given database.
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

// Get retrieves the value stored under key.
// POST: Returns ErrKeyNotFound if the key was never written
func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores value under key, replacing any previous value.
// POST: A subsequent Get returns exactly value
func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(value))
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

// MemoryKV is an in-memory KV for tests.
type MemoryKV struct {
	values map[string][]byte
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Get retrieves the value stored under key.
// POST: Returns ErrKeyNotFound if the key was never written
func (s *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// Set stores value under key, replacing any previous value.
func (s *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	return nil
}
