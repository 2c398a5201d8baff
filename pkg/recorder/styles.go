package recorder

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/theme"
)

// Styles are the lipgloss styles used by the prompt.
type Styles struct {
	Header lipgloss.Style
	Prompt lipgloss.Style
	Spark  lipgloss.Style
	OK     lipgloss.Style
	Error  lipgloss.Style
}

// StylesFor derives prompt styles from a chart theme.
func StylesFor(t theme.Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Accent)),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Spark:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorFor(0))),
		OK:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorFor(2))),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorFor(3))),
	}
}

// PlainStyles renders everything unstyled.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Header: s, Prompt: s, Spark: s, OK: s, Error: s}
}
