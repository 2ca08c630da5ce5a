package provider

import (
	"strings"
)

// maxSubtitleLen bounds result subtitles for display.
const maxSubtitleLen = 150

// maxHighlights bounds the highlight list per result.
const maxHighlights = 3

// buildSubtitle assembles a subtitle from the snippet and extra details,
// truncated to maxSubtitleLen.
func buildSubtitle(snippet, extraDetails string) string {
	subtitle := snippet
	if d := strings.TrimSpace(extraDetails); d != "" {
		subtitle = subtitle + " · " + d
	}
	if r := []rune(subtitle); len(r) > maxSubtitleLen {
		subtitle = string(r[:maxSubtitleLen])
	}
	return subtitle
}

// buildHighlights derives up to maxHighlights short callouts for a result:
// a snippet excerpt, the source attribution, and the search details.
func buildHighlights(snippet, source, extraDetails string) []string {
	var highlights []string

	if snippet != "" {
		words := strings.Fields(snippet)
		if len(words) > 5 {
			words = words[:5]
		}
		highlights = append(highlights, strings.Join(words, " "))
	}

	if source != "" {
		highlights = append(highlights, "Found on "+source)
	} else {
		highlights = append(highlights, "Google search result")
	}

	if d := strings.TrimSpace(extraDetails); d != "" {
		words := strings.Fields(d)
		if len(words) > 2 {
			words = words[:2]
		}
		highlights = append(highlights, "Details: "+strings.Join(words, " "))
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

// cleanTitle strips platform boilerplate from result titles.
// LinkedIn titles carry " | org" suffixes; X titles carry " on X".
func cleanTitle(title, sourceName string) (string, string) {
	switch sourceName {
	case "LinkedIn":
		if name, rest, ok := strings.Cut(title, " | "); ok {
			return name, rest
		}
	case "X (Twitter)":
		// First occurrence only; the phrase can reappear inside a post.
		return strings.Replace(title, " on X", "", 1), ""
	}
	return title, ""
}
