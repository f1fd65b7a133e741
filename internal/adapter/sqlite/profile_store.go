// Package sqlite persists user profiles in a small key-value table, the
// server-side counterpart of the browser storage the wizard UI keeps its
// profile in.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"adsim/internal/core/domain"

	_ "modernc.org/sqlite"
)

const (
	timeFormat    = time.RFC3339Nano
	profilePrefix = "user:"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
    key        TEXT PRIMARY KEY,
    value      BLOB NOT NULL,
    updated_at TEXT NOT NULL
)`

// ProfileStore implements port.ProfileStore on a SQLite database.
type ProfileStore struct {
	sqlDB *sql.DB
	now   func() time.Time

	// writeMu serializes writers so Update's read-modify-write is never
	// interleaved with another write from this process.
	writeMu sync.Mutex
}

// Open opens a SQLite store at the provided path, creating the schema when
// missing.
func Open(path string) (*ProfileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &ProfileStore{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the underlying SQLite database.
func (s *ProfileStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put serializes the profile and stores it under its key.
func (s *ProfileStore) Put(ctx context.Context, p domain.UserProfile) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.put(ctx, s.sqlDB, p)
}

// Update reads the profile, applies fn and writes it back in one
// transaction.
func (s *ProfileStore) Update(ctx context.Context, id string, fn func(*domain.UserProfile) error) (*domain.UserProfile, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin profile update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := s.get(ctx, tx, id)
	if err != nil || p == nil {
		return nil, err
	}
	if err = fn(p); err != nil {
		return nil, err
	}
	p.ID = id
	if err = s.put(ctx, tx, *p); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile %s: %w", id, err)
	}
	return p, nil
}

// execer is the part of *sql.DB and *sql.Tx the store needs.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *ProfileStore) put(ctx context.Context, db execer, p domain.UserProfile) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("profile id is required")
	}
	value, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = db.ExecContext(ctx, `
        INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		profileKey(p.ID), value, s.now().UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("put profile %s: %w", p.ID, err)
	}
	return nil
}

// Get rehydrates a stored profile, or returns nil when none exists.
func (s *ProfileStore) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.get(ctx, s.sqlDB, id)
}

func (s *ProfileStore) get(ctx context.Context, db execer, id string) (*domain.UserProfile, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, profileKey(id)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}
	var p domain.UserProfile
	if err := json.Unmarshal(value, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}
	return &p, nil
}

// Delete removes the profile. Unknown ids are ignored.
func (s *ProfileStore) Delete(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, profileKey(id)); err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}

func profileKey(id string) string {
	return profilePrefix + id
}
