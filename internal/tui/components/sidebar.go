package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderSidebar lists the projects with the current one highlighted
func RenderSidebar(projects []*models.Project, selectedIdx, height int) string {
	lines := []string{TitleStyle.Render("Projects"), ""}
	for i, p := range projects {
		name := p.Name
		if len([]rune(name)) > SidebarContentWidth-2 {
			name = string([]rune(name)[:SidebarContentWidth-3]) + "…"
		}
		if i == selectedIdx {
			lines = append(lines, lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(theme.SelectedBorder)).
				Render("› "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	if len(projects) == 0 {
		lines = append(lines, SubtleStyle.Render("none yet"))
	}

	style := SidebarStyle
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}
