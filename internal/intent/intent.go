// Package intent classifies free-form text into typed people-search queries.
//
// Extraction runs an ordered rule table; the first matching rule wins.
// Priority: email, phone, username, name. Text with search-intent keywords
// but no extractable query yields HasIntent=true with an empty Query so the
// caller can ask for clarification instead of silently failing.
package intent

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Type identifies what kind of identifier a query carries.
type Type string

const (
	TypeName     Type = "name"
	TypePhone    Type = "phone"
	TypeEmail    Type = "email"
	TypeUsername Type = "username"
)

// ParseType converts a string to a Type.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeName:
		return TypeName, nil
	case TypePhone:
		return TypePhone, nil
	case TypeEmail:
		return TypeEmail, nil
	case TypeUsername:
		return TypeUsername, nil
	default:
		return "", fmt.Errorf("unknown search type %q (use: name, phone, email, username)", s)
	}
}

// Extraction is the result of intent extraction.
// Type is empty exactly when no typed query could be extracted.
type Extraction struct {
	Query     string
	Type      Type
	HasIntent bool
}

// rule pairs a name with an extraction function.
// Rules are evaluated in order; the first match wins.
type rule struct {
	name    string
	extract func(raw string) (Extraction, bool)
}

// DefaultCacheSize is the LRU cache size for extraction results.
const DefaultCacheSize = 1024

// Extractor classifies free text using an ordered rule table.
// Extraction is a pure function of the input; results are cached.
type Extractor struct {
	rules []rule
	cache *lru.Cache[string, Extraction]
}

// NewExtractor creates an extractor with the default rule table.
func NewExtractor() *Extractor {
	cache, _ := lru.New[string, Extraction](DefaultCacheSize)
	return &Extractor{
		rules: []rule{
			{name: "email", extract: extractEmail},
			{name: "phone", extract: extractPhone},
			{name: "username", extract: extractUsername},
			{name: "name", extract: extractName},
		},
		cache: cache,
	}
}

// Extract classifies raw text into a typed query.
// No side effects beyond the internal cache.
func (e *Extractor) Extract(raw string) Extraction {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return Extraction{}
	}

	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	result := Extraction{}
	for _, r := range e.rules {
		if ext, ok := r.extract(raw); ok {
			result = ext
			break
		}
	}

	e.cache.Add(key, result)
	return result
}
