// Package telemetry tracks local search metrics: provider health, latency
// distribution, and zero-result rate. Nothing is reported externally.
package telemetry

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/store"
)

// snapshotKey is where the aggregate counters persist in the store.
const snapshotKey = "telemetry:metrics"

// recentQueryCapacity bounds the in-memory recent-event window.
const recentQueryCapacity = 100

// LatencyBucket is a latency histogram bucket for provider calls.
type LatencyBucket string

const (
	BucketFast     LatencyBucket = "lt500ms"
	BucketNormal   LatencyBucket = "lt1s"
	BucketSlow     LatencyBucket = "lt3s"
	BucketVerySlow LatencyBucket = "gte3s"
)

// LatencyToBucket converts a duration to its histogram bucket.
// Buckets reflect external HTTP calls, not in-process work.
func LatencyToBucket(d time.Duration) LatencyBucket {
	ms := d.Milliseconds()
	switch {
	case ms < 500:
		return BucketFast
	case ms < 1000:
		return BucketNormal
	case ms < 3000:
		return BucketSlow
	default:
		return BucketVerySlow
	}
}

// QueryEvent is one completed search for metrics recording.
type QueryEvent struct {
	Type        intent.Type   `json:"type"`
	ResultCount int           `json:"result_count"`
	Latency     time.Duration `json:"latency"`
	Degraded    bool          `json:"degraded"`
	Timestamp   time.Time     `json:"timestamp"`
}

// IsZeroResult reports whether this query returned no results.
func (e QueryEvent) IsZeroResult() bool {
	return e.ResultCount == 0
}

// ProviderStats aggregates one backend's call outcomes.
type ProviderStats struct {
	Calls    int `json:"calls"`
	Failures int `json:"failures"`

	Latency map[LatencyBucket]int `json:"latency"`
}

// Snapshot is the persisted aggregate view.
type Snapshot struct {
	Queries     int                      `json:"queries"`
	ZeroResults int                      `json:"zero_results"`
	Degraded    int                      `json:"degraded"`
	ByType      map[intent.Type]int      `json:"by_type"`
	Providers   map[string]ProviderStats `json:"providers"`
}

// SearchMetrics collects search and provider metrics in memory.
// Safe for concurrent use.
type SearchMetrics struct {
	mu       sync.Mutex
	snapshot Snapshot
	recent   *ringBuffer[QueryEvent]
}

// NewSearchMetrics creates an empty collector.
func NewSearchMetrics() *SearchMetrics {
	return &SearchMetrics{
		snapshot: Snapshot{
			ByType:    make(map[intent.Type]int),
			Providers: make(map[string]ProviderStats),
		},
		recent: newRingBuffer[QueryEvent](recentQueryCapacity),
	}
}

// RecordQuery records one completed search.
func (m *SearchMetrics) RecordQuery(e QueryEvent) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot.Queries++
	m.snapshot.ByType[e.Type]++
	if e.IsZeroResult() {
		m.snapshot.ZeroResults++
	}
	if e.Degraded {
		m.snapshot.Degraded++
	}
	m.recent.add(e)
}

// RecordProviderCall records one backend call outcome.
func (m *SearchMetrics) RecordProviderCall(provider string, latency time.Duration, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.snapshot.Providers[provider]
	if stats.Latency == nil {
		stats.Latency = make(map[LatencyBucket]int)
	}
	stats.Calls++
	if failed {
		stats.Failures++
	}
	stats.Latency[LatencyToBucket(latency)]++
	m.snapshot.Providers[provider] = stats
}

// Snapshot returns a copy of the aggregate counters.
func (m *SearchMetrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := Snapshot{
		Queries:     m.snapshot.Queries,
		ZeroResults: m.snapshot.ZeroResults,
		Degraded:    m.snapshot.Degraded,
		ByType:      make(map[intent.Type]int, len(m.snapshot.ByType)),
		Providers:   make(map[string]ProviderStats, len(m.snapshot.Providers)),
	}
	for k, v := range m.snapshot.ByType {
		out.ByType[k] = v
	}
	for k, v := range m.snapshot.Providers {
		latency := make(map[LatencyBucket]int, len(v.Latency))
		for b, n := range v.Latency {
			latency[b] = n
		}
		v.Latency = latency
		out.Providers[k] = v
	}
	return out
}

// Recent returns the recent query window, oldest first.
func (m *SearchMetrics) Recent() []QueryEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recent.items()
}

// ZeroResultRate returns the fraction of searches that found nothing.
func (m *SearchMetrics) ZeroResultRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snapshot.Queries == 0 {
		return 0
	}
	return float64(m.snapshot.ZeroResults) / float64(m.snapshot.Queries)
}

// Persist writes the aggregate counters to the store.
func (m *SearchMetrics) Persist(st store.Store) error {
	raw, err := json.Marshal(m.Snapshot())
	if err != nil {
		return err
	}
	return st.Set(snapshotKey, raw)
}

// Load seeds the aggregate counters from a previous run.
// A missing or corrupt record starts fresh.
func (m *SearchMetrics) Load(st store.Store) {
	raw, err := st.Get(snapshotKey)
	if err != nil {
		return
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return
	}
	if snap.ByType == nil {
		snap.ByType = make(map[intent.Type]int)
	}
	if snap.Providers == nil {
		snap.Providers = make(map[string]ProviderStats)
	}

	m.mu.Lock()
	m.snapshot = snap
	m.mu.Unlock()
}
