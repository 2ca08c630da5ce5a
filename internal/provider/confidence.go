package provider

import (
	"math"
	"strings"
)

// Confidence scoring constants.
const (
	// confidenceFloor and confidenceCeiling bound algorithmic scores.
	confidenceFloor   = 0.60
	confidenceCeiling = 0.95

	// positionPenalty is subtracted per rank position.
	positionPenalty = 0.05

	// queryMatchBoost applies when the query appears verbatim in the
	// title or snippet.
	queryMatchBoost = 0.10

	// trustedHostBoost applies when the URL belongs to a high-trust platform.
	trustedHostBoost = 0.05

	// RelatedQuestionConfidence is the fixed score for hand-seeded
	// related-question cards.
	RelatedQuestionConfidence = 0.75
)

// trustedPlatforms are high-trust hosts whose presence in a result URL
// boosts confidence.
var trustedPlatforms = []string{"linkedin", "instagram", "twitter", "facebook", "github"}

// Score computes the [0.60, 0.95] confidence for a result.
// position is the 0-indexed rank. The base decays with rank; verbatim query
// matches in title/snippet and high-trust hosts add capped boosts.
// The result is rounded to 2 decimals.
func Score(position int, title, snippet, link, query string) float64 {
	confidence := math.Max(confidenceFloor, confidenceCeiling-float64(position)*positionPenalty)

	q := strings.ToLower(query)
	if q != "" &&
		(strings.Contains(strings.ToLower(title), q) || strings.Contains(strings.ToLower(snippet), q)) {
		confidence = math.Min(confidenceCeiling, confidence+queryMatchBoost)
	}

	lowerLink := strings.ToLower(link)
	for _, p := range trustedPlatforms {
		if strings.Contains(lowerLink, p) {
			confidence = math.Min(confidenceCeiling, confidence+trustedHostBoost)
			break
		}
	}

	return math.Round(confidence*100) / 100
}
