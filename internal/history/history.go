// Package history keeps a bounded, newest-first log of past searches.
package history

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/store"
)

// entriesKey is where the log lives in the store.
const entriesKey = "history:entries"

// DefaultMaxEntries bounds the log; the oldest entries fall off.
const DefaultMaxEntries = 100

// Entry is one recorded search.
type Entry struct {
	ID          string      `json:"id"`
	Type        intent.Type `json:"type"`
	Query       string      `json:"query"`
	ResultCount int         `json:"result_count"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Log is the persistent search history, newest first.
type Log struct {
	store      store.Store
	maxEntries int

	mu      sync.Mutex
	entries []Entry
}

// NewLog loads the persisted history. A corrupt record starts empty.
func NewLog(s store.Store, maxEntries int) (*Log, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	l := &Log{store: s, maxEntries: maxEntries}

	raw, err := s.Get(entriesKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		if jsonErr := json.Unmarshal(raw, &l.entries); jsonErr != nil {
			l.entries = nil
		}
	}

	return l, nil
}

// Add prepends a search to the log and trims it to the bound.
// Returns the stored entry with its generated id.
func (l *Log) Add(queryType intent.Type, query string, resultCount int) (Entry, error) {
	entry := Entry{
		ID:          uuid.NewString(),
		Type:        queryType,
		Query:       query,
		ResultCount: resultCount,
		Timestamp:   time.Now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[:l.maxEntries]
	}

	return entry, l.persistLocked()
}

// List returns the log, newest first. The returned slice is a copy.
func (l *Log) List() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ListByType returns only entries of the given query type, newest first.
func (l *Log) ListByType(queryType intent.Type) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Entry
	for _, e := range l.entries {
		if e.Type == queryType {
			out = append(out, e)
		}
	}
	return out
}

// Remove deletes the entry with the given id. Unknown ids are not an error.
func (l *Log) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return l.persistLocked()
		}
	}
	return nil
}

// Clear empties the log.
func (l *Log) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	return l.persistLocked()
}

// Len returns the number of stored entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Log) persistLocked() error {
	raw, err := json.Marshal(l.entries)
	if err != nil {
		return dserrors.InternalError("failed to encode history", err)
	}
	return l.store.Set(entriesKey, raw)
}
