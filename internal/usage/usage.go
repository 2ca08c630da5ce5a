// Package usage enforces the daily free-search quota and the free-tier
// result cap. Counters reset at local midnight and persist across restarts.
package usage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
	"github.com/deepsearch-ai/deepsearch/internal/provider"
	"github.com/deepsearch-ai/deepsearch/internal/store"
)

// stateKey is where the gate keeps its counter in the store.
const stateKey = "usage:state"

// dayKeyFormat produces local calendar-day keys, e.g. "2026-08-29".
const dayKeyFormat = "2006-01-02"

// Clock supplies the current time. Injected so tests can cross midnight.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return ClockFunc(time.Now) }

// state is the persisted counter record.
type state struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Status is a snapshot of today's quota for display.
type Status struct {
	Used       int    `json:"used"`
	Limit      int    `json:"limit"`
	Remaining  int    `json:"remaining"`
	Day        string `json:"day"`
	SourcesCap int    `json:"sources_cap"`
}

// Gate tracks free-tier searches per local calendar day.
// Premium callers bypass both the search quota and the source cap.
type Gate struct {
	store       store.Store
	clock       Clock
	dailyLimit  int
	freeSources int

	mu    sync.Mutex
	state state
}

// NewGate loads the persisted counter and returns a ready gate.
// A corrupt record is discarded rather than blocking searches.
func NewGate(s store.Store, clock Clock, dailyLimit, freeSources int) (*Gate, error) {
	if clock == nil {
		clock = SystemClock()
	}
	g := &Gate{
		store:       s,
		clock:       clock,
		dailyLimit:  dailyLimit,
		freeSources: freeSources,
	}

	raw, err := s.Get(stateKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// First run; counter starts at zero.
	case err != nil:
		return nil, err
	default:
		if jsonErr := json.Unmarshal(raw, &g.state); jsonErr != nil {
			g.state = state{}
		}
	}

	return g, nil
}

// CanSearch reports whether a search is allowed right now.
func (g *Gate) CanSearch(isPremium bool) bool {
	if isPremium {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.rolloverLocked()
	return g.state.Count < g.dailyLimit
}

// RecordSearch consumes one search from today's quota. Premium searches are
// not counted. Returns a quota error when the free allowance is spent.
func (g *Gate) RecordSearch(isPremium bool) error {
	if isPremium {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.rolloverLocked()
	if g.state.Count >= g.dailyLimit {
		return dserrors.New(dserrors.ErrCodeQuotaExceeded,
			fmt.Sprintf("daily free search limit of %d reached", g.dailyLimit), nil).
			WithSuggestion("Your quota resets at midnight. Upgrade for unlimited searches.")
	}

	g.state.Count++
	return g.persistLocked()
}

// Remaining returns how many free searches are left today.
// Premium callers always have at least one remaining.
func (g *Gate) Remaining(isPremium bool) int {
	if isPremium {
		return 1
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.rolloverLocked()
	if r := g.dailyLimit - g.state.Count; r > 0 {
		return r
	}
	return 0
}

// Reset clears today's counter. Used by the CLI for support scenarios.
func (g *Gate) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = state{Day: g.dayKeyLocked()}
	return g.persistLocked()
}

// Status returns a display snapshot of today's quota.
func (g *Gate) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rolloverLocked()
	remaining := g.dailyLimit - g.state.Count
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		Used:       g.state.Count,
		Limit:      g.dailyLimit,
		Remaining:  remaining,
		Day:        g.state.Day,
		SourcesCap: g.freeSources,
	}
}

// LimitResults caps the visible result set for free callers.
// Premium callers see everything.
func (g *Gate) LimitResults(results []provider.SearchResult, isPremium bool) []provider.SearchResult {
	if isPremium || len(results) <= g.freeSources {
		return results
	}
	return results[:g.freeSources]
}

// rolloverLocked resets the counter when the local calendar day changed
// and persists the fresh record right away, so a restart mid-day sees
// today's key even if no further search is recorded.
func (g *Gate) rolloverLocked() {
	day := g.dayKeyLocked()
	if g.state.Day != day {
		g.state = state{Day: day}
		// A failed write only delays persistence until the next
		// recorded search; read paths stay error-free.
		_ = g.persistLocked()
	}
}

func (g *Gate) dayKeyLocked() string {
	return g.clock.Now().Local().Format(dayKeyFormat)
}

func (g *Gate) persistLocked() error {
	raw, err := json.Marshal(g.state)
	if err != nil {
		return dserrors.InternalError("failed to encode usage state", err)
	}
	return g.store.Set(stateKey, raw)
}
