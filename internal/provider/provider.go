// Package provider implements the people-search backends and the fallback
// chain that orchestrates them.
//
// Two backends are supported: SerpAPI (primary) and Serper.dev (fallback).
// Both normalize raw organic results into SearchResult records with a
// derived source platform, a confidence score, and highlight snippets.
// Transport failures are classified DSErrors; "no results" is a successful
// empty response, never an error.
package provider

import (
	"context"
	"time"

	"github.com/deepsearch-ai/deepsearch/internal/intent"
)

// Request is a single provider search request.
type Request struct {
	// Query is the normalized search term (name, email, digits-only phone,
	// or username).
	Query string

	// Type is the kind of identifier being searched.
	Type intent.Type

	// ExtraDetails is optional free-form context (city, employer) appended
	// to the provider query and surfaced in result subtitles.
	ExtraDetails string
}

// SearchTerm returns the query string sent to the backend, with extra
// details appended when present.
func (r Request) SearchTerm() string {
	if r.ExtraDetails == "" {
		return r.Query
	}
	return r.Query + " " + r.ExtraDetails
}

// Metadata carries per-result bookkeeping.
type Metadata struct {
	// Position is the 1-based rank the backend reported.
	Position int `json:"position"`

	// Verified is whether the source marks the profile as verified.
	// Web search results are never verified.
	Verified bool `json:"verified"`

	// LastSeen is when the result was observed.
	LastSeen time.Time `json:"last_seen"`
}

// SearchResult is one normalized people-search hit.
// Immutable once produced by a provider's normalization step.
type SearchResult struct {
	// SourceName is the human platform name (e.g., "LinkedIn", "Google").
	SourceName string `json:"source_name"`

	// Title is the display name or page title.
	Title string `json:"title"`

	// Subtitle is a short description, truncated to 150 characters.
	Subtitle string `json:"subtitle"`

	// URL is the external link; empty when the backend provided none.
	URL string `json:"url,omitempty"`

	// Confidence is the [0,1] trust score for this result.
	Confidence float64 `json:"confidence"`

	// Highlights are up to three short callouts about the result.
	Highlights []string `json:"highlights,omitempty"`

	Metadata Metadata `json:"metadata"`
}

// SearchProvider is a single external search backend.
//
// Search returns the normalized results for a request. An empty slice with
// a nil error means the backend answered and found nothing. A non-nil error
// is always a classified transport failure (network, auth, rate-limit,
// malformed request) and signals the chain to try the next backend.
type SearchProvider interface {
	// Name identifies the backend in logs and error details.
	Name() string

	Search(ctx context.Context, req Request) ([]SearchResult, error)
}
