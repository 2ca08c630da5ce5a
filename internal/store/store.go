// Package store persists DeepSearch state (usage counters, search history)
// as a key-value layer over SQLite.
package store

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("store: key not found")

// Store is the persistence layer. Values are opaque byte slices; callers
// encode their own records (JSON throughout this codebase).
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set writes the value for key, replacing any existing value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns all keys with the given prefix, sorted ascending.
	Keys(prefix string) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}
