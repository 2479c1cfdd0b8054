package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/markdown"
	"github.com/thenoetrevino/tablero/internal/reorder"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

const detailWidth = 48

// View renders the current state of the application
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m *Model) render() string {
	if m.ui.Width() == 0 {
		return "Loading..."
	}
	if m.ui.Mode() == state.HelpMode {
		return lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render("Keys"),
			"",
			m.help.View(m.keys),
		)
	}

	b := m.Board()
	if b == nil {
		msg := "No projects yet. Create one with: tablero project create <name>"
		if m.loadErr != nil {
			msg = fmt.Sprintf("Could not load board: %v", m.loadErr)
		}
		return lipgloss.JoinVertical(lipgloss.Left, msg, "", m.footer())
	}

	var notification string
	if n, ok := m.notifications.Latest(); ok {
		notification = notifications.RenderInline(n)
	}
	tabs := make([]string, len(m.projects))
	for i, p := range m.projects {
		tabs[i] = p.Name
	}
	header := components.RenderTabs(tabs, m.projectIdx, m.ui.Width(), notification)

	var panes []string
	if !m.ui.SidebarCollapsed() {
		panes = append(panes, components.RenderSidebar(m.projects, m.projectIdx, m.ui.ContentHeight()))
	}
	panes = append(panes, m.renderColumns())
	if m.ui.DetailOpen() && m.detail != nil {
		panes = append(panes, components.RenderDetail(m.detail, detailWidth, markdown.StyleDark))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer())
}

func (m *Model) renderColumns() string {
	b := m.Board()
	if len(b.Columns) == 0 {
		return components.SubtleStyle.Render("No columns yet. Add one with: tablero column create")
	}

	grabbedTask, grabbedColumn := 0, 0
	if d, ok := m.tasks.Drag(); ok {
		grabbedTask = d.ActiveItemID
	}
	if d, ok := m.columns.Drag(); ok {
		grabbedColumn = d.ActiveItemID
	}

	start := min(m.ui.ViewportOffset(), len(b.Columns)-1)
	end := min(start+m.ui.ViewportSize(), len(b.Columns))
	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		col := b.Columns[i]
		selectedTask := -1
		if i == m.ui.SelectedColumn() {
			selectedTask = m.ui.SelectedTask()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:          col,
			Tasks:           b.TasksIn(col.ID),
			Selected:        i == m.ui.SelectedColumn(),
			Grabbed:         col.ID == grabbedColumn,
			SelectedTaskIdx: selectedTask,
			GrabbedTaskID:   grabbedTask,
			Height:          m.ui.ContentHeight(),
			ScrollOffset:    m.ui.TaskScrollOffset(col.ID),
			Detailed:        m.detailedCards(),
		}))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	left, right := " ", " "
	if start > 0 {
		left = components.IndicatorStyle.Render("◀")
	}
	if end < len(b.Columns) {
		right = components.IndicatorStyle.Render("▶")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, row, right)
}

func (m *Model) footer() string {
	saving := m.tasks.Phase() == reorder.PhaseCommitting || m.columns.Phase() == reorder.PhaseCommitting
	bar := components.RenderStatusBar(components.StatusBarProps{
		Width:  m.ui.Width(),
		Mode:   m.ui.Mode().String(),
		Saving: saving,
		Remote: m.remote,
	})

	var keys string
	switch m.ui.Mode() {
	case state.GrabTaskMode:
		keys = m.help.View(grabHelp{keyMap: m.keys})
	case state.GrabColumnMode:
		keys = m.help.View(grabHelp{keyMap: m.keys, column: true})
	default:
		keys = m.help.View(m.keys)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, keys)
}
