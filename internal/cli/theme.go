package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	Title lipgloss.Style
	Faint lipgloss.Style
	Alert lipgloss.Style
}

// newTheme binds styles to w so colour is dropped when w is not a terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Title: r.NewStyle().Bold(true),
		Faint: r.NewStyle().Faint(true),
		Alert: r.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
