package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - single lime accent with grays for secondary text.
const (
	ColorLime     = "154" // Primary accent - platform names, strong matches
	ColorLimeDim  = "106" // Dimmed lime for medium-confidence bars
	ColorWhite    = "255" // Result titles
	ColorGray     = "245" // Subtitles, labels
	ColorDarkGray = "238" // Separators, URLs
	ColorRed      = "196" // Errors
	ColorYellow   = "220" // Warnings, low confidence
)

// Styles holds the render styles for search output.
type Styles struct {
	Header    lipgloss.Style
	Source    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	URL       lipgloss.Style
	Highlight lipgloss.Style
	Label     lipgloss.Style
	Dim       lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style

	ConfidenceHigh lipgloss.Style
	ConfidenceMed  lipgloss.Style
	ConfidenceLow  lipgloss.Style
}

// DefaultStyles returns the styled components for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Source:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		URL:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),

		ConfidenceHigh: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		ConfidenceMed:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLimeDim)),
		ConfidenceLow:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Header:         lipgloss.NewStyle(),
		Source:         lipgloss.NewStyle(),
		Title:          lipgloss.NewStyle(),
		Subtitle:       lipgloss.NewStyle(),
		URL:            lipgloss.NewStyle(),
		Highlight:      lipgloss.NewStyle(),
		Label:          lipgloss.NewStyle(),
		Dim:            lipgloss.NewStyle(),
		Warning:        lipgloss.NewStyle(),
		Error:          lipgloss.NewStyle(),
		ConfidenceHigh: lipgloss.NewStyle(),
		ConfidenceMed:  lipgloss.NewStyle(),
		ConfidenceLow:  lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
