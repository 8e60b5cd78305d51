package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles bundles palette + border for one output.
// Build it from the renderer of the writer it will be printed to, so color
// is dropped automatically when that writer is not a terminal.
type Styles struct {
	Title, Muted, Accent, Success, Pending, Error lipgloss.Style
	Border                                        lipgloss.Style
}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// NewStyles returns the named theme; unknown names fall back to classic.
func NewStyles(r *lipgloss.Renderer, theme string) Styles {
	switch strings.ToLower(theme) {
	case "neon":
		return Styles{
			Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:  r.NewStyle().Foreground(lipgloss.Color("14")),
			Success: r.NewStyle().Foreground(lipgloss.Color("10")),
			Pending: r.NewStyle().Foreground(lipgloss.Color("11")),
			Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Border: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("13")).
				Padding(0, 1),
		}
	case "mono":
		plain := r.NewStyle()
		return Styles{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Pending: plain, Error: plain,
			Border: r.NewStyle().Border(lipgloss.ASCIIBorder()).Padding(0, 1),
		}
	default: // classic
		return Styles{
			Title:   r.NewStyle().Bold(true),
			Muted:   r.NewStyle().Faint(true),
			Accent:  r.NewStyle().Foreground(lipgloss.Color("12")),
			Success: r.NewStyle().Foreground(lipgloss.Color("42")),
			Pending: r.NewStyle().Foreground(lipgloss.Color("214")),
			Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Border: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1),
		}
	}
}

// ValidTheme reports whether name is one of Themes.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}
