// Package notifications renders the one-line banners shown in the tab bar
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

type style struct {
	icon       string
	foreground string
	background string
}

func styleFor(level state.NotificationLevel) style {
	switch level {
	case state.LevelWarning:
		return style{icon: "⚠", foreground: theme.WarningFg, background: theme.WarningBg}
	case state.LevelError:
		return style{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return style{icon: "🔔", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// RenderInline renders a compact single-line notification
func RenderInline(n state.Notification) string {
	s := styleFor(n.Level)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + n.Message)
}
