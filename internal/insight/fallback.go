package insight

import (
	"fmt"
	"strings"

	"github.com/deepsearch-ai/deepsearch/internal/provider"
)

// fallbackAnalysis builds a deterministic digest when the model is
// unavailable: platform list, average confidence, and the top results.
func fallbackAnalysis(query string, results []provider.SearchResult) string {
	var platforms []string
	seen := map[string]bool{}
	total := 0.0
	for _, r := range results {
		if !seen[r.SourceName] {
			seen[r.SourceName] = true
			platforms = append(platforms, r.SourceName)
		}
		total += r.Confidence
	}
	avg := total / float64(len(results))

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s) for %q across %s. Average match confidence is %.0f%%.\n",
		len(results), query, strings.Join(platforms, ", "), avg*100)
	for i, r := range results {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "- %s: %s\n", r.SourceName, r.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}

// fallbackGuidance is the static zero-result advice.
func fallbackGuidance(query string, degraded bool) (string, []string) {
	suggestions := []string{
		"Check the spelling of the name",
		"Add a city, employer, or other detail",
		"Try an email address, phone number, or username instead",
	}
	if degraded {
		return fmt.Sprintf("The search for %q could not reach any search backend. Please try again in a moment.", query),
			append([]string{"Try again shortly"}, suggestions...)
	}
	return fmt.Sprintf("No results found for %q. Try refining your search.", query), suggestions
}

// fallbackAnswer is the static reply for general questions when the model
// is unavailable.
const fallbackAnswer = "I can help you find people. Try searching by name, email address, phone number, or username, for example: \"find Jane Roe\" or \"search jane@example.org\"."
