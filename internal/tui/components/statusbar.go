package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// StatusBarProps holds the status bar's left and right text
type StatusBarProps struct {
	Width  int
	Mode   string
	Saving bool
	Remote string // server address, empty when local
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left: mode badge and save state. Right: where the board lives.
func RenderStatusBar(props StatusBarProps) string {
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Render(props.Mode)
	left := badge
	if props.Saving {
		left += IndicatorStyle.Render("  saving…")
	}

	right := "local"
	if props.Remote != "" {
		right = "remote " + props.Remote
	}
	right = IndicatorStyle.Render("tablero · " + right)

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gapWidth) + right
}
