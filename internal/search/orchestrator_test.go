package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
	"github.com/deepsearch-ai/deepsearch/internal/history"
	"github.com/deepsearch-ai/deepsearch/internal/insight"
	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/provider"
	"github.com/deepsearch-ai/deepsearch/internal/store"
	"github.com/deepsearch-ai/deepsearch/internal/usage"
)

// stubResolver replaces the provider chain in orchestrator tests.
type stubResolver struct {
	results  []provider.SearchResult
	degraded bool
	calls    int
	lastReq  provider.Request
}

func (s *stubResolver) Resolve(_ context.Context, req provider.Request) ([]provider.SearchResult, bool) {
	s.calls++
	s.lastReq = req
	return s.results, s.degraded
}

func manyResults(n int) []provider.SearchResult {
	results := make([]provider.SearchResult, n)
	for i := range results {
		results[i] = provider.SearchResult{
			SourceName: "LinkedIn",
			Title:      "Jane Roe",
			Confidence: 0.90,
			Metadata:   provider.Metadata{Position: i + 1},
		}
	}
	return results
}

// testHarness wires an orchestrator from real in-memory components plus a
// stubbed provider chain and a disabled (template-only) synthesizer.
type testHarness struct {
	orch     *Orchestrator
	resolver *stubResolver
	gate     *usage.Gate
	log      *history.Log
}

func newHarness(t *testing.T, dailyLimit int) *testHarness {
	t.Helper()

	s := store.NewMemory()
	gate, err := usage.NewGate(s, nil, dailyLimit, 2)
	require.NoError(t, err)
	log, err := history.NewLog(s, history.DefaultMaxEntries)
	require.NoError(t, err)

	resolver := &stubResolver{}
	orch := NewOrchestrator(
		intent.NewExtractor(),
		resolver,
		gate,
		insight.NewSynthesizer(insight.Config{}, nil),
		log,
		nil,
	)
	return &testHarness{orch: orch, resolver: resolver, gate: gate, log: log}
}

func TestResolve_EmptyQuery(t *testing.T) {
	h := newHarness(t, 1)

	_, err := h.orch.Resolve(context.Background(), "   ", false)
	require.Error(t, err)
	assert.Equal(t, dserrors.ErrCodeQueryEmpty, dserrors.Code(err))
}

func TestResolve_NoIntentAnswersWithoutQuota(t *testing.T) {
	h := newHarness(t, 1)

	resp, err := h.orch.Resolve(context.Background(), "what is the weather like", false)
	require.NoError(t, err)

	assert.False(t, resp.Intent.HasIntent)
	assert.NotEmpty(t, resp.Text)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, h.resolver.calls, "no provider call without intent")
	assert.Equal(t, 1, resp.Remaining, "quota untouched")
	assert.Zero(t, h.log.Len(), "no history without a search")
}

func TestResolve_IntentWithoutQueryPrompts(t *testing.T) {
	h := newHarness(t, 1)

	resp, err := h.orch.Resolve(context.Background(), "search", false)
	require.NoError(t, err)

	assert.True(t, resp.Intent.HasIntent)
	assert.Equal(t, missingQueryPrompt, resp.Text)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, 0, h.resolver.calls)
	assert.Equal(t, 1, resp.Remaining)
}

func TestResolve_FullSearchFlow(t *testing.T) {
	h := newHarness(t, 1)
	h.resolver.results = manyResults(5)

	resp, err := h.orch.Resolve(context.Background(), "find Jane Roe", false)
	require.NoError(t, err)

	assert.True(t, resp.Intent.HasIntent)
	assert.Equal(t, intent.TypeName, resp.Intent.Type)
	assert.Len(t, resp.Results, 2, "free tier sees at most two sources")
	assert.NotEmpty(t, resp.Text)
	assert.Empty(t, resp.Suggestions)
	assert.Equal(t, 0, resp.Remaining)

	entries := h.log.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Jane Roe", entries[0].Query)
	assert.Equal(t, 5, entries[0].ResultCount, "history records the uncapped count")
}

func TestResolve_QuotaExceeded(t *testing.T) {
	h := newHarness(t, 1)
	h.resolver.results = manyResults(1)

	_, err := h.orch.Resolve(context.Background(), "find Jane Roe", false)
	require.NoError(t, err)

	_, err = h.orch.Resolve(context.Background(), "find John Doe", false)
	require.Error(t, err)
	assert.Equal(t, dserrors.ErrCodeQuotaExceeded, dserrors.Code(err))
	assert.Equal(t, 1, h.resolver.calls, "blocked search never reaches providers")
}

func TestResolve_PremiumSeesEverything(t *testing.T) {
	h := newHarness(t, 1)
	h.resolver.results = manyResults(5)

	for i := 0; i < 3; i++ {
		resp, err := h.orch.Resolve(context.Background(), "find Jane Roe", true)
		require.NoError(t, err)
		assert.Len(t, resp.Results, 5)
	}
}

func TestResolve_ZeroResultsGetsGuidance(t *testing.T) {
	h := newHarness(t, 1)
	h.resolver.results = nil

	resp, err := h.orch.Resolve(context.Background(), "find Jane Roe", false)
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.Contains(t, resp.Text, "No results found")
	assert.NotEmpty(t, resp.Suggestions)
}

func TestResolve_DegradedGuidanceMentionsBackends(t *testing.T) {
	h := newHarness(t, 1)
	h.resolver.degraded = true

	resp, err := h.orch.Resolve(context.Background(), "find Jane Roe", false)
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "could not reach")
}

func TestResolve_EmailQueryNormalized(t *testing.T) {
	h := newHarness(t, 1)
	h.resolver.results = manyResults(1)

	resp, err := h.orch.Resolve(context.Background(), "look for Jane@Example.org please", false)
	require.NoError(t, err)

	assert.Equal(t, intent.TypeEmail, resp.Intent.Type)
	assert.Equal(t, "jane@example.org", h.resolver.lastReq.Query)
}

func TestSearch_Direct(t *testing.T) {
	h := newHarness(t, 1)
	h.resolver.results = manyResults(4)

	out, err := h.orch.Search(context.Background(), intent.TypeUsername, "janeroe", "berlin", false)
	require.NoError(t, err)

	assert.Len(t, out.Results, 2)
	assert.Equal(t, 4, out.TotalFound)
	assert.False(t, out.Degraded)
	assert.Equal(t, "berlin", h.resolver.lastReq.ExtraDetails)
}

func TestSearch_EmptyQuery(t *testing.T) {
	h := newHarness(t, 1)

	_, err := h.orch.Search(context.Background(), intent.TypeName, "  ", "", false)
	require.Error(t, err)
	assert.Equal(t, dserrors.ErrCodeQueryEmpty, dserrors.Code(err))
}
