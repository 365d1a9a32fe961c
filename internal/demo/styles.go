package demo

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles for one output stream. The renderer is
// bound to the writer, so redirected output stays plain text.
type styles struct {
	label  lipgloss.Style
	value  lipgloss.Style
	caught lipgloss.Style
	fatal  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		label:  r.NewStyle().Bold(true),
		value:  r.NewStyle().Foreground(lipgloss.Color("6")),
		caught: r.NewStyle().Foreground(lipgloss.Color("3")),
		fatal:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}
