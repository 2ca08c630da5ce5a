package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
)

// SQLiteStore is the on-disk Store backed by a single-table SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the state database at path.
// Parent directories are created as needed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, dserrors.StorageError("failed to create state directory", err)
	}

	dsn := fmt.Sprintf("file:%s?_txlock=immediate", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, dserrors.New(dserrors.ErrCodeStoreOpen, "failed to open state database", err).
			WithDetail("path", path)
	}

	// WAL mode must be set via PRAGMA; modernc.org/sqlite ignores DSN params.
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, dserrors.New(dserrors.ErrCodeStoreOpen, "failed to configure state database", err).
				WithDetail("pragma", pragma)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, dserrors.New(dserrors.ErrCodeStoreCorrupt, "failed to initialize state schema", err).
			WithDetail("path", path)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Get implements Store.
func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dserrors.New(dserrors.ErrCodeStoreCorrupt, "failed to read state", err).
			WithDetail("key", key)
	}
	return value, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	if err != nil {
		return dserrors.New(dserrors.ErrCodeStoreWrite, "failed to write state", err).
			WithDetail("key", key)
	}
	return nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return dserrors.New(dserrors.ErrCodeStoreWrite, "failed to delete state", err).
			WithDetail("key", key)
	}
	return nil
}

// Keys implements Store.
func (s *SQLiteStore) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key", prefix)
	if err != nil {
		return nil, dserrors.New(dserrors.ErrCodeStoreCorrupt, "failed to list state keys", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, dserrors.New(dserrors.ErrCodeStoreCorrupt, "failed to scan state key", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close implements Store. A WAL checkpoint keeps the sidecar files small.
func (s *SQLiteStore) Close() error {
	_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return s.db.Close()
}
