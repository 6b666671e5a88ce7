package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles contains the lipgloss styles for user-facing notices
type Styles struct {
	Notice  lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default notice styles
func DefaultStyles() Styles {
	return Styles{
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// Render applies the style only when stdout is a terminal; piped output
// stays plain.
func (s Styles) Render(style lipgloss.Style, text string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return style.Render(text)
}
