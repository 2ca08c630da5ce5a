package provider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSubtitle(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		extra   string
		want    string
	}{
		{
			name:    "snippet only",
			snippet: "Software engineer in Berlin",
			want:    "Software engineer in Berlin",
		},
		{
			name:    "extra details appended",
			snippet: "Software engineer",
			extra:   "Berlin",
			want:    "Software engineer · Berlin",
		},
		{
			name:  "blank details ignored",
			extra: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSubtitle(tt.snippet, tt.extra))
		})
	}
}

func TestBuildSubtitle_Truncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := buildSubtitle(long, "")
	assert.Len(t, []rune(got), maxSubtitleLen)

	// Truncation must not split multi-byte runes.
	multibyte := strings.Repeat("ş", 200)
	got = buildSubtitle(multibyte, "")
	assert.Len(t, []rune(got), maxSubtitleLen)
	assert.True(t, strings.HasPrefix(got, "ş"))
}

func TestBuildHighlights(t *testing.T) {
	got := buildHighlights("Jane Roe is a software engineer based in Berlin", "LinkedIn", "Berlin startup scene")
	assert.Equal(t, []string{
		"Jane Roe is a software",
		"Found on LinkedIn",
		"Details: Berlin startup",
	}, got)
}

func TestBuildHighlights_NoSource(t *testing.T) {
	got := buildHighlights("", "", "")
	assert.Equal(t, []string{"Google search result"}, got)
}

func TestBuildHighlights_CapsAtThree(t *testing.T) {
	got := buildHighlights("one two three four five six", "GitHub", "extra details here")
	assert.Len(t, got, maxHighlights)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		source    string
		wantTitle string
		wantRest  string
	}{
		{
			name:      "linkedin pipe suffix stripped",
			title:     "Jane Roe | Acme Corp",
			source:    "LinkedIn",
			wantTitle: "Jane Roe",
			wantRest:  "Acme Corp",
		},
		{
			name:      "x on X removed",
			title:     "Jane Roe on X",
			source:    "X (Twitter)",
			wantTitle: "Jane Roe",
		},
		{
			name:      "x strips first occurrence only",
			title:     `Jane Roe on X: "saw a talk on X today"`,
			source:    "X (Twitter)",
			wantTitle: `Jane Roe: "saw a talk on X today"`,
		},
		{
			name:      "other sources untouched",
			title:     "Jane Roe | Acme Corp",
			source:    "GitHub",
			wantTitle: "Jane Roe | Acme Corp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, rest := cleanTitle(tt.title, tt.source)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}
