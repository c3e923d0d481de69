package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	result lipgloss.Style
	label  lipgloss.Style
	header lipgloss.Style
	err    lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		return styles{
			result: r.NewStyle(),
			label:  r.NewStyle(),
			header: r.NewStyle(),
			err:    r.NewStyle(),
		}
	}
	return styles{
		result: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		label:  r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		header: r.NewStyle().Bold(true).Underline(true),
		err:    r.NewStyle().Foreground(lipgloss.Color("#DC2626")),
	}
}
