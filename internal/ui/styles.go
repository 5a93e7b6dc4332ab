package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#5C6B80", Dark: "#A0AEC0"}
	colorError  = lipgloss.Color("#E53935")
)

// Styles decorates bot output on the terminal.
type Styles struct {
	Prompt lipgloss.Style
	Result lipgloss.Style
	Info   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the coloured theme. lipgloss drops the colours by
// itself when stdout is not a terminal.
func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Result: lipgloss.NewStyle(),
		Info:   lipgloss.NewStyle().Foreground(colorMuted),
		Error:  lipgloss.NewStyle().Foreground(colorError),
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle(),
		Result: lipgloss.NewStyle(),
		Info:   lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}

// RenderLines applies style to each line separately, so tables keep their
// exact widths.
func RenderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
