package insight

import (
	"fmt"
	"strings"

	"github.com/deepsearch-ai/deepsearch/internal/provider"
)

// analyzeSystemPrompt frames the model as a people-search analyst.
const analyzeSystemPrompt = `You are a people-search analyst. You are given web search results for a query about a person. Summarize what the results reveal in 2-4 short sentences: which platforms they appear on, how confident the matches look, and anything notable. Be factual and concise. Never invent details that are not in the results.`

// guidanceSystemPrompt frames the model for the zero-result case.
const guidanceSystemPrompt = `You are a people-search assistant. A search returned no results. In 2-3 short sentences, suggest how the user could refine their query: alternative spellings, adding a city or employer, or trying a different identifier such as an email or username. Do not apologize at length.`

// answerSystemPrompt frames the model for general questions without a
// person-search intent.
const answerSystemPrompt = `You are a helpful assistant inside a people-search tool. Answer the user's question briefly. If the question could be turned into a people search, mention that they can search by name, email, phone number, or username.`

// buildResultDigest renders results as a compact plain-text block for the
// analyze prompt: source, title, subtitle, confidence, and highlights.
func buildResultDigest(query string, results []provider.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\n\nResults:\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. [%s] %s (confidence %.2f)\n", i+1, r.SourceName, r.Title, r.Confidence)
		if r.Subtitle != "" {
			fmt.Fprintf(&b, "   %s\n", r.Subtitle)
		}
		if len(r.Highlights) > 0 {
			fmt.Fprintf(&b, "   Highlights: %s\n", strings.Join(r.Highlights, ", "))
		}
	}
	return b.String()
}

// buildGuidancePrompt renders the zero-result situation for the model.
// degraded distinguishes provider outage from a genuinely empty answer.
func buildGuidancePrompt(query string, degraded bool) string {
	if degraded {
		return fmt.Sprintf("The search for %q could not be completed because the search backends were unavailable. Suggest trying again shortly, plus query refinements for later.", query)
	}
	return fmt.Sprintf("The search for %q completed but found no results. Suggest refinements.", query)
}
