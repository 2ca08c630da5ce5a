package intent

import (
	"regexp"
	"strings"
)

// Compiled patterns for the rule table.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)

	// Digit-heavy run; a match still needs >=7 digits after stripping separators.
	phonePattern    = regexp.MustCompile(`\+?[\d\s\-()]{7,}`)
	nonDigitPattern = regexp.MustCompile(`\D`)

	handlePattern       = regexp.MustCompile(`@([a-zA-Z0-9._-]+)`)
	usernameWordPattern = regexp.MustCompile(`(?i)\b(?:username|handle)\s*:?\s*([a-zA-Z0-9._-]+)`)

	// Search-intent keywords, including the Turkish equivalents the app ships with.
	intentKeywordPattern = regexp.MustCompile(`(?i)\b(search|find|look for|who is|ara|bul|araştır|kim)\b`)

	// Candidate-name patterns, tried in order.
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:search|find|look for|ara|bul)\s+(?:for\s+)?([a-zA-Z ]{2,})`),
		regexp.MustCompile(`(?i)(?:who is|about|kim)\s+([a-zA-Z ]{2,})`),
		regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+)\b`),
	}

	capitalizedNamePattern = regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+)\b`)
)

// nameStoplist filters intent verbs and filler words out of name candidates.
var nameStoplist = map[string]struct{}{
	"search": {}, "find": {}, "look": {}, "for": {}, "who": {}, "is": {},
	"about": {}, "ara": {}, "bul": {}, "kim": {}, "bu": {}, "kişi": {},
}

// extractEmail matches an email address anywhere in the text.
func extractEmail(raw string) (Extraction, bool) {
	m := emailPattern.FindString(raw)
	if m == "" {
		return Extraction{}, false
	}
	return Extraction{Query: strings.ToLower(m), Type: TypeEmail, HasIntent: true}, true
}

// extractPhone matches a digit-heavy run with at least 7 digits.
// The query is the digits-only form.
func extractPhone(raw string) (Extraction, bool) {
	m := phonePattern.FindString(raw)
	if m == "" {
		return Extraction{}, false
	}
	digits := nonDigitPattern.ReplaceAllString(m, "")
	if len(digits) < 7 {
		return Extraction{}, false
	}
	return Extraction{Query: digits, Type: TypePhone, HasIntent: true}, true
}

// extractUsername handles @handle mentions and "username"/"handle" keywords.
// A keyword with no extractable token still claims the input: the caller
// gets HasIntent with an empty query and must ask for clarification.
func extractUsername(raw string) (Extraction, bool) {
	if m := handlePattern.FindStringSubmatch(raw); m != nil {
		return Extraction{Query: m[1], Type: TypeUsername, HasIntent: true}, true
	}

	lower := strings.ToLower(raw)
	if !strings.Contains(lower, "username") && !strings.Contains(lower, "handle") {
		return Extraction{}, false
	}
	if m := usernameWordPattern.FindStringSubmatch(raw); m != nil {
		return Extraction{Query: m[1], Type: TypeUsername, HasIntent: true}, true
	}
	return Extraction{HasIntent: true}, true
}

// extractName handles search-intent keywords and First Last patterns.
func extractName(raw string) (Extraction, bool) {
	hasKeyword := intentKeywordPattern.MatchString(raw)
	hasCapitalized := capitalizedNamePattern.MatchString(raw)

	if !hasKeyword && !hasCapitalized {
		return Extraction{}, false
	}

	for _, p := range namePatterns {
		m := p.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		if name := cleanName(m[1]); name != "" {
			return Extraction{Query: name, Type: TypeName, HasIntent: true}, true
		}
	}

	// Intent expressed but nothing extractable: surface for clarification.
	return Extraction{HasIntent: true}, true
}

// cleanName strips stoplist words from a candidate name.
// Returns "" when nothing usable remains.
func cleanName(candidate string) string {
	var kept []string
	for _, w := range strings.Fields(strings.TrimSpace(candidate)) {
		if _, stop := nameStoplist[strings.ToLower(w)]; stop {
			continue
		}
		kept = append(kept, w)
	}
	name := strings.Join(kept, " ")
	if len(name) < 2 {
		return ""
	}
	return name
}
