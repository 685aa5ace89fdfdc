// Package storage persists user-owned state to a local SQLite
// database. Two independently named records are kept, one for the
// market store's user subset and one for the user profile store, each
// serialized as a JSON payload alongside an explicit schema version.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SchemaVersion guards the persisted record shape. A record written
// under a different version is discarded on load rather than migrated.
const SchemaVersion = 1

// Record names mirror the two durable records the app keeps.
const (
	MarketStateRecord = "market-storage"
	UserStateRecord   = "user-storage"
)

var (
	// ErrNotConfigured indicates the store was used before Open.
	ErrNotConfigured = errors.New("storage: database not configured")
	// ErrSchemaMismatch indicates a record written under a different
	// schema version. Callers are expected to warn and start empty.
	ErrSchemaMismatch = errors.New("storage: persisted schema version mismatch")
)

const createStateTableSQL = `CREATE TABLE IF NOT EXISTS app_state (
    name           TEXT PRIMARY KEY,
    schema_version INTEGER NOT NULL,
    payload        TEXT NOT NULL,
    updated_at     TIMESTAMP NOT NULL
);`

// Store wraps the SQLite handle behind record save/load operations.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// state table exists.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// WAL keeps the durable write cheap relative to the in-memory mutation.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(createStateTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRecord serializes v and upserts it under name.
func (s *Store) SaveRecord(ctx context.Context, name string, v any) error {
	if s == nil || s.db == nil {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", name, err)
	}

	const query = `INSERT OR REPLACE INTO app_state (name, schema_version, payload, updated_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, name, SchemaVersion, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("save record %s: %w", name, err)
	}
	return nil
}

// LoadRecord reads the record under name into out. It reports whether
// a record was found; a record written under a different schema
// version yields ErrSchemaMismatch (there is no migration path).
func (s *Store) LoadRecord(ctx context.Context, name string, out any) (bool, error) {
	if s == nil || s.db == nil {
		return false, ErrNotConfigured
	}

	const query = `SELECT schema_version, payload FROM app_state WHERE name = ?`
	var version int
	var payload string
	err := s.db.QueryRowContext(ctx, query, name).Scan(&version, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load record %s: %w", name, err)
	}

	if version != SchemaVersion {
		return false, fmt.Errorf("record %s: stored version %d, want %d: %w", name, version, SchemaVersion, ErrSchemaMismatch)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("unmarshal record %s: %w", name, err)
	}
	return true, nil
}

// DeleteRecord removes the record under name; no-op if absent.
func (s *Store) DeleteRecord(ctx context.Context, name string) error {
	if s == nil || s.db == nil {
		return ErrNotConfigured
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete record %s: %w", name, err)
	}
	return nil
}
