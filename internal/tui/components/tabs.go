package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderTabs renders a tab bar with the given tab names.
// selectedIdx indicates which tab is active, width is the total width to fill
// and notification is drawn at the right end.
//
// Layout:
//
//	╭──────╮ ╭──────╮                      [Notification]
//	│ Tab1 │ │ Tab2 │──────────────────────
func RenderTabs(tabs []string, selectedIdx, width int, notification string) string {
	rendered := make([]string, 0, len(tabs))
	for i, name := range tabs {
		if i == selectedIdx {
			rendered = append(rendered, ActiveTabStyle.Render(name))
		} else {
			rendered = append(rendered, TabStyle.Render(name))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	gapWidth := max(width-lipgloss.Width(row)-lipgloss.Width(notification)-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notification != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notification)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
