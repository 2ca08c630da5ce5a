// Package search wires intent extraction, the provider chain, quota
// enforcement, history, and insight synthesis into one entry point.
package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
	"github.com/deepsearch-ai/deepsearch/internal/history"
	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/provider"
	"github.com/deepsearch-ai/deepsearch/internal/telemetry"
)

// Extractor detects person-search intent in free text.
type Extractor interface {
	Extract(text string) intent.Extraction
}

// Resolver runs the provider fallback chain.
type Resolver interface {
	Resolve(ctx context.Context, req provider.Request) (results []provider.SearchResult, degraded bool)
}

// Gate enforces the daily quota and the free-tier result cap.
type Gate interface {
	CanSearch(isPremium bool) bool
	RecordSearch(isPremium bool) error
	Remaining(isPremium bool) int
	LimitResults(results []provider.SearchResult, isPremium bool) []provider.SearchResult
}

// Synthesizer produces the natural-language layer of a response.
type Synthesizer interface {
	Analyze(ctx context.Context, query string, results []provider.SearchResult) string
	Guidance(ctx context.Context, query string, degraded bool) (string, []string)
	Answer(ctx context.Context, question string) string
}

// Recorder logs completed searches.
type Recorder interface {
	Add(queryType intent.Type, query string, resultCount int) (history.Entry, error)
}

// missingQueryPrompt asks for an identifier when intent arrived without one.
const missingQueryPrompt = "Who would you like to search for? Give me a name, email address, phone number, or username."

var missingQuerySuggestions = []string{
	"Search for a full name, e.g. \"find Jane Roe\"",
	"Search by email, e.g. \"jane@example.org\"",
	"Search by username, e.g. \"@janeroe\"",
}

// Orchestrator is the query-resolution facade used by the CLI and the MCP
// server.
type Orchestrator struct {
	extractor Extractor
	chain     Resolver
	gate      Gate
	synth     Synthesizer
	history   Recorder
	logger    *slog.Logger
	metrics   *telemetry.SearchMetrics
}

// SetMetrics enables query metrics. Optional; call before use.
func (o *Orchestrator) SetMetrics(m *telemetry.SearchMetrics) {
	o.metrics = m
}

// NewOrchestrator assembles the facade.
func NewOrchestrator(extractor Extractor, chain Resolver, gate Gate, synth Synthesizer, history Recorder, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		extractor: extractor,
		chain:     chain,
		gate:      gate,
		synth:     synth,
		history:   history,
		logger:    logger,
	}
}

// Resolve answers a free-text query end to end: extract intent, enforce the
// quota, run the provider chain, and synthesize a reply.
//
// Queries without person-search intent are answered directly and do not
// consume quota. A spent quota returns a structured quota error.
func (o *Orchestrator) Resolve(ctx context.Context, rawText string, isPremium bool) (Response, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return Response{}, dserrors.New(dserrors.ErrCodeQueryEmpty, "query text is empty", nil).
			WithSuggestion("Type a question or a person to search for.")
	}

	ext := o.extractor.Extract(text)

	if !ext.HasIntent {
		// General question; answer without touching the quota.
		o.logger.Debug("no search intent detected", slog.String("text", text))
		return Response{
			Text:      o.synth.Answer(ctx, text),
			Intent:    ext,
			Remaining: o.gate.Remaining(isPremium),
		}, nil
	}

	if ext.Query == "" {
		// Intent without an identifier; prompt instead of searching.
		return Response{
			Text:        missingQueryPrompt,
			Suggestions: missingQuerySuggestions,
			Intent:      ext,
			Remaining:   o.gate.Remaining(isPremium),
		}, nil
	}

	outcome, err := o.run(ctx, ext.Type, ext.Query, "", isPremium)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		Results:   outcome.Results,
		Intent:    ext,
		Remaining: outcome.Remaining,
	}
	if outcome.TotalFound == 0 {
		resp.Text, resp.Suggestions = o.synth.Guidance(ctx, ext.Query, outcome.Degraded)
	} else {
		resp.Text = o.synth.Analyze(ctx, ext.Query, outcome.Results)
	}
	return resp, nil
}

// Search runs a direct typed search, skipping intent extraction and
// synthesis. Used by the CLI search command and the MCP search tool.
func (o *Orchestrator) Search(ctx context.Context, queryType intent.Type, query, extraDetails string, isPremium bool) (Outcome, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Outcome{}, dserrors.New(dserrors.ErrCodeQueryEmpty, "search query is empty", nil)
	}
	return o.run(ctx, queryType, query, extraDetails, isPremium)
}

// run is the shared quota-search-record path.
func (o *Orchestrator) run(ctx context.Context, queryType intent.Type, query, extraDetails string, isPremium bool) (Outcome, error) {
	if err := o.gate.RecordSearch(isPremium); err != nil {
		return Outcome{}, err
	}

	start := time.Now()
	results, degraded := o.chain.Resolve(ctx, provider.Request{
		Query:        query,
		Type:         queryType,
		ExtraDetails: extraDetails,
	})

	if o.metrics != nil {
		o.metrics.RecordQuery(telemetry.QueryEvent{
			Type:        queryType,
			ResultCount: len(results),
			Latency:     time.Since(start),
			Degraded:    degraded,
		})
	}

	if _, err := o.history.Add(queryType, query, len(results)); err != nil {
		// History is best-effort; the search already succeeded.
		o.logger.Warn("failed to record search history", dserrors.FormatForLog(err)...)
	}

	o.logger.Info("search completed",
		slog.String("type", string(queryType)),
		slog.Int("results", len(results)),
		slog.Bool("degraded", degraded),
		slog.Bool("premium", isPremium))

	return Outcome{
		Results:    o.gate.LimitResults(results, isPremium),
		TotalFound: len(results),
		Degraded:   degraded,
		Remaining:  o.gate.Remaining(isPremium),
	}, nil
}
