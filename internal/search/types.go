package search

import (
	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/provider"
)

// Response is the full answer to a free-text query: synthesized text,
// optional refinement suggestions, and the visible result set.
type Response struct {
	// Text is the natural-language summary or answer.
	Text string `json:"text"`

	// Suggestions are refinement hints, present when the search found
	// nothing or no search intent was detected.
	Suggestions []string `json:"suggestions,omitempty"`

	// Results are the visible search results, capped for free callers.
	Results []provider.SearchResult `json:"results,omitempty"`

	// Intent is what the query was understood as; zero value when no
	// person-search intent was detected.
	Intent intent.Extraction `json:"intent"`

	// Remaining is how many free searches are left after this call.
	Remaining int `json:"remaining"`
}

// Outcome is the answer to a direct typed search.
type Outcome struct {
	// Results are the visible results, capped for free callers.
	Results []provider.SearchResult `json:"results"`

	// TotalFound is the result count before the free-tier cap.
	TotalFound int `json:"total_found"`

	// Degraded is true when every provider failed.
	Degraded bool `json:"degraded"`

	// Remaining is how many free searches are left after this call.
	Remaining int `json:"remaining"`
}
