package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - lime accent with blue prompts
const (
	ColorLime     = "154" // Banner and schema display (#AFFF00)
	ColorLimeDim  = "106" // Dimmed lime for secondary success text
	ColorBlue     = "39"  // Prompt text
	ColorGray     = "245" // Secondary text, labels
	ColorDarkGray = "238" // Separators
	ColorRed      = "196" // Errors
	ColorYellow   = "220" // Warnings
)

// Styles holds all styles used by the wizard.
type Styles struct {
	Prompt  lipgloss.Style
	Error   lipgloss.Style
	Banner  lipgloss.Style
	Schema  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Label   lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBlue)),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Schema:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLimeDim)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Banner:  lipgloss.NewStyle(),
		Schema:  lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
