package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/store"
)

func TestLatencyToBucket(t *testing.T) {
	tests := []struct {
		latency time.Duration
		want    LatencyBucket
	}{
		{100 * time.Millisecond, BucketFast},
		{499 * time.Millisecond, BucketFast},
		{700 * time.Millisecond, BucketNormal},
		{2 * time.Second, BucketSlow},
		{5 * time.Second, BucketVerySlow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LatencyToBucket(tt.latency), "latency %v", tt.latency)
	}
}

func TestSearchMetrics_RecordQuery(t *testing.T) {
	m := NewSearchMetrics()

	m.RecordQuery(QueryEvent{Type: intent.TypeName, ResultCount: 3, Latency: time.Second})
	m.RecordQuery(QueryEvent{Type: intent.TypeName, ResultCount: 0, Latency: time.Second})
	m.RecordQuery(QueryEvent{Type: intent.TypeEmail, ResultCount: 1, Degraded: true})

	snap := m.Snapshot()
	assert.Equal(t, 3, snap.Queries)
	assert.Equal(t, 1, snap.ZeroResults)
	assert.Equal(t, 1, snap.Degraded)
	assert.Equal(t, 2, snap.ByType[intent.TypeName])
	assert.Equal(t, 1, snap.ByType[intent.TypeEmail])
	assert.InDelta(t, 1.0/3.0, m.ZeroResultRate(), 0.001)
}

func TestSearchMetrics_RecordProviderCall(t *testing.T) {
	m := NewSearchMetrics()

	m.RecordProviderCall("serpapi", 200*time.Millisecond, false)
	m.RecordProviderCall("serpapi", 2*time.Second, true)
	m.RecordProviderCall("serper", 100*time.Millisecond, false)

	snap := m.Snapshot()
	serpapi := snap.Providers["serpapi"]
	assert.Equal(t, 2, serpapi.Calls)
	assert.Equal(t, 1, serpapi.Failures)
	assert.Equal(t, 1, serpapi.Latency[BucketFast])
	assert.Equal(t, 1, serpapi.Latency[BucketSlow])

	assert.Equal(t, 1, snap.Providers["serper"].Calls)
}

func TestSearchMetrics_RecentWindow(t *testing.T) {
	m := NewSearchMetrics()

	for i := 0; i < recentQueryCapacity+20; i++ {
		m.RecordQuery(QueryEvent{Type: intent.TypeName, ResultCount: i})
	}

	recent := m.Recent()
	require.Len(t, recent, recentQueryCapacity)
	// Oldest surviving event first.
	assert.Equal(t, 20, recent[0].ResultCount)
	assert.Equal(t, recentQueryCapacity+19, recent[len(recent)-1].ResultCount)
}

func TestSearchMetrics_PersistAndLoad(t *testing.T) {
	st := store.NewMemory()

	m := NewSearchMetrics()
	m.RecordQuery(QueryEvent{Type: intent.TypePhone, ResultCount: 2})
	m.RecordProviderCall("serpapi", time.Second, false)
	require.NoError(t, m.Persist(st))

	m2 := NewSearchMetrics()
	m2.Load(st)

	snap := m2.Snapshot()
	assert.Equal(t, 1, snap.Queries)
	assert.Equal(t, 1, snap.ByType[intent.TypePhone])
	assert.Equal(t, 1, snap.Providers["serpapi"].Calls)
}

func TestSearchMetrics_LoadMissingOrCorrupt(t *testing.T) {
	st := store.NewMemory()

	m := NewSearchMetrics()
	m.Load(st)
	assert.Zero(t, m.Snapshot().Queries)

	require.NoError(t, st.Set("telemetry:metrics", []byte("{bad")))
	m.Load(st)
	assert.Zero(t, m.Snapshot().Queries)
}

func TestRingBuffer(t *testing.T) {
	b := newRingBuffer[string](3)
	assert.Empty(t, b.items())

	b.add("a")
	b.add("b")
	assert.Equal(t, []string{"a", "b"}, b.items())

	b.add("c")
	b.add("d") // evicts "a"
	assert.Equal(t, []string{"b", "c", "d"}, b.items())
}

func TestSearchMetrics_SnapshotIsCopy(t *testing.T) {
	m := NewSearchMetrics()
	m.RecordProviderCall("serpapi", time.Second, false)

	snap := m.Snapshot()
	snap.Providers["serpapi"] = ProviderStats{Calls: 99}
	snap.ByType[intent.TypeName] = 99

	fresh := m.Snapshot()
	assert.Equal(t, 1, fresh.Providers["serpapi"].Calls)
	assert.Zero(t, fresh.ByType[intent.TypeName])
}

func TestQueryEvent_IsZeroResult(t *testing.T) {
	assert.True(t, QueryEvent{}.IsZeroResult())
	assert.False(t, QueryEvent{ResultCount: 1}.IsZeroResult())
}
