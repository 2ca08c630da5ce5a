// Package ui renders search results, history, and quota status for the
// terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/deepsearch-ai/deepsearch/internal/history"
	"github.com/deepsearch-ai/deepsearch/internal/provider"
	"github.com/deepsearch-ai/deepsearch/internal/usage"
)

// confidenceBarWidth is the character width of the confidence meter.
const confidenceBarWidth = 10

// Renderer formats search output with the active style set.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to out. Colors are used only when
// out is a real terminal and noColor is false.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	if !noColor {
		noColor = !IsTerminal(out)
	}
	return &Renderer{out: out, styles: GetStyles(noColor)}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Results prints a numbered result list with confidence meters.
func (r *Renderer) Results(results []provider.SearchResult) {
	for i, res := range results {
		r.printf("%s %s  %s\n",
			r.styles.Dim.Render(fmt.Sprintf("%d.", i+1)),
			r.styles.Source.Render("["+res.SourceName+"]"),
			r.styles.Title.Render(res.Title))

		if res.Subtitle != "" {
			r.printf("   %s\n", r.styles.Subtitle.Render(res.Subtitle))
		}
		if res.URL != "" {
			r.printf("   %s\n", r.styles.URL.Render(res.URL))
		}

		r.printf("   %s %s %s\n",
			r.styles.Label.Render("match"),
			r.confidenceStyle(res.Confidence).Render(confidenceBar(res.Confidence)),
			r.styles.Label.Render(fmt.Sprintf("%.0f%%", res.Confidence*100)))

		if len(res.Highlights) > 0 {
			r.printf("   %s\n", r.styles.Highlight.Render(strings.Join(res.Highlights, " · ")))
		}
		r.printf("\n")
	}
}

// Summary prints the synthesized text block.
func (r *Renderer) Summary(text string) {
	if text == "" {
		return
	}
	r.printf("%s\n\n", text)
}

// Suggestions prints refinement hints.
func (r *Renderer) Suggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	r.printf("%s\n", r.styles.Header.Render("Try:"))
	for _, s := range suggestions {
		r.printf("  %s %s\n", r.styles.Dim.Render("•"), s)
	}
}

// History prints past searches, newest first.
func (r *Renderer) History(entries []history.Entry) {
	if len(entries) == 0 {
		r.printf("%s\n", r.styles.Dim.Render("No searches yet."))
		return
	}
	for _, e := range entries {
		r.printf("%s  %s %s %s\n",
			r.styles.Dim.Render(e.Timestamp.Format("2006-01-02 15:04")),
			r.styles.Source.Render(fmt.Sprintf("%-8s", e.Type)),
			r.styles.Title.Render(e.Query),
			r.styles.Label.Render(fmt.Sprintf("(%d results)", e.ResultCount)))
	}
}

// Usage prints today's quota snapshot.
func (r *Renderer) Usage(st usage.Status) {
	r.printf("%s\n", r.styles.Header.Render("Today's usage ("+st.Day+")"))
	r.printf("  %s %d / %d\n", r.styles.Label.Render("searches"), st.Used, st.Limit)
	r.printf("  %s %d\n", r.styles.Label.Render("remaining"), st.Remaining)
	r.printf("  %s %d per search\n", r.styles.Label.Render("visible sources"), st.SourcesCap)
}

// Warningf prints a styled warning line.
func (r *Renderer) Warningf(format string, args ...any) {
	r.printf("%s\n", r.styles.Warning.Render(fmt.Sprintf(format, args...)))
}

// confidenceStyle picks the meter color for a score.
func (r *Renderer) confidenceStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.85:
		return r.styles.ConfidenceHigh
	case score >= 0.70:
		return r.styles.ConfidenceMed
	default:
		return r.styles.ConfidenceLow
	}
}

// confidenceBar renders a fixed-width meter for a [0,1] score.
func confidenceBar(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score * confidenceBarWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", confidenceBarWidth-filled)
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
