package provider

import (
	"net/url"
	"strings"
)

// knownSources maps domains to human platform names.
// Ordered so lookup is deterministic when a URL mentions several domains.
var knownSources = []struct {
	domain string
	name   string
}{
	{"linkedin.com", "LinkedIn"},
	{"instagram.com", "Instagram"},
	{"twitter.com", "X (Twitter)"},
	{"x.com", "X (Twitter)"},
	{"facebook.com", "Facebook"},
	{"tiktok.com", "TikTok"},
	{"github.com", "GitHub"},
	{"youtube.com", "YouTube"},
	{"reddit.com", "Reddit"},
	{"pinterest.com", "Pinterest"},
	{"snapchat.com", "Snapchat"},
	{"tumblr.com", "Tumblr"},
	{"medium.com", "Medium"},
	{"quora.com", "Quora"},
}

// ExtractSourceName derives a platform name for a result.
// Preference order: the backend-reported source, a known domain from the
// URL host, a capitalized host token, then the generic fallback label.
func ExtractSourceName(rawURL, reportedSource, fallback string) string {
	if reportedSource != "" {
		return reportedSource
	}
	if rawURL == "" {
		return fallback
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return fallback
	}
	host := strings.ToLower(u.Hostname())

	for _, s := range knownSources {
		if host == s.domain || strings.HasSuffix(host, "."+s.domain) {
			return s.name
		}
	}

	// Unknown domain: capitalize the first host token, e.g. "example.com" -> "Example"
	host = strings.TrimPrefix(host, "www.")
	if tok, _, ok := strings.Cut(host, "."); ok && tok != "" {
		return strings.ToUpper(tok[:1]) + tok[1:]
	}
	return fallback
}
