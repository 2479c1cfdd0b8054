package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/reorder"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.ensureVisible(m.Board())
		return m, nil

	case boardLoadedMsg:
		return m, m.handleBoardLoaded(msg)

	case moveSettledMsg:
		return m, m.handleMoveSettled(msg)

	case detailLoadedMsg:
		if msg.err != nil {
			m.notifications.Add(state.LevelError, fmt.Sprintf("Could not load task: %v", msg.err))
			return m, nil
		}
		m.detail = msg.detail
		m.ui.SetDetailOpen(true)
		return m, nil

	case subscribedMsg:
		if msg.err != nil {
			m.logger.Warn("event stream unavailable", "error", msg.err)
			m.notifications.Add(state.LevelWarning, "Live updates unavailable")
			return m, nil
		}
		m.stream = msg.ch
		return m, waitForEvent(m.stream)

	case eventMsg:
		m.logger.Debug("board changed", "type", msg.event.Type, "project_id", msg.event.ProjectID)
		return m, tea.Batch(m.loadBoard(m.currentProjectID()), waitForEvent(m.stream))

	case streamClosedMsg:
		m.stream = nil
		m.notifications.Add(state.LevelWarning, "Live updates stopped")
		return m, nil

	case tea.KeyPressMsg:
		cmd := m.handleKey(msg)
		return m, tea.Batch(cmd, m.flushPending())
	}
	return m, nil
}

func (m *Model) handleBoardLoaded(msg boardLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.loadErr = msg.err
		m.logger.Error("failed to load board", "error", msg.err)
		m.notifications.Add(state.LevelError, fmt.Sprintf("Could not load board: %v", msg.err))
		return nil
	}
	if m.busy() {
		m.pending = true
		return nil
	}
	return m.applyBoard(msg)
}

func (m *Model) applyBoard(msg boardLoadedMsg) tea.Cmd {
	m.loadErr = nil
	m.projects = msg.projects
	m.board = msg.board
	if m.board == nil {
		m.projectIdx = 0
		m.resetCoordinators(&models.Board{Project: &models.Project{}})
		return nil
	}

	for i, p := range m.projects {
		if p.ID == m.board.Project.ID {
			m.projectIdx = i
		}
	}
	m.resetCoordinators(m.board)

	b := m.Board()
	m.ui.SetSelectedColumn(min(m.ui.SelectedColumn(), max(len(b.Columns)-1, 0)))
	if col := m.selectedColumn(b); col != nil {
		m.ui.SetSelectedTask(min(m.ui.SelectedTask(), max(len(b.TasksIn(col.ID))-1, 0)))
	}
	m.ensureVisible(b)

	if m.ui.DetailOpen() && m.detail != nil {
		return m.loadDetail(m.detail.ID)
	}
	return nil
}

func (m *Model) handleMoveSettled(msg moveSettledMsg) tea.Cmd {
	c := m.tasks
	if msg.move.ItemType == reorder.ItemColumn {
		c = m.columns
	}
	if err := c.Settle(msg.err); err != nil {
		// Stale result for a coordinator replaced by a reload
		m.logger.Warn("ignoring settle", "move_id", msg.move.ID, "error", err)
	}
	if msg.err != nil {
		m.selectItem(msg.move.ItemType, msg.move.ItemID)
	}

	return m.flushPending()
}

// flushPending reloads once nothing is in flight. The deferred board
// predates the move that was in flight, so it is fetched again.
func (m *Model) flushPending() tea.Cmd {
	if !m.pending || m.busy() {
		return nil
	}
	m.pending = false
	return m.loadBoard(m.currentProjectID())
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.ui.Mode() {
	case state.HelpMode:
		if key.Matches(msg, m.keys.Help, m.keys.Quit, m.keys.Cancel) {
			m.help.ShowAll = false
			m.ui.SetMode(state.NormalMode)
		}
		return nil
	case state.GrabTaskMode:
		return m.handleGrabTask(msg)
	case state.GrabColumnMode:
		return m.handleGrabColumn(msg)
	default:
		return m.handleNormal(msg)
	}
}

func (m *Model) handleNormal(msg tea.KeyPressMsg) tea.Cmd {
	m.notifications.Clear()
	b := m.Board()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.ui.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.Left):
		if m.ui.SelectedColumn() > 0 {
			m.ui.SetSelectedColumn(m.ui.SelectedColumn() - 1)
			m.ui.SetSelectedTask(0)
		}
	case key.Matches(msg, m.keys.Right):
		if b != nil && m.ui.SelectedColumn() < len(b.Columns)-1 {
			m.ui.SetSelectedColumn(m.ui.SelectedColumn() + 1)
			m.ui.SetSelectedTask(0)
		}
	case key.Matches(msg, m.keys.Up):
		if m.ui.SelectedTask() > 0 {
			m.ui.SetSelectedTask(m.ui.SelectedTask() - 1)
		}
	case key.Matches(msg, m.keys.Down):
		if col := m.selectedColumn(b); col != nil && m.ui.SelectedTask() < len(b.TasksIn(col.ID))-1 {
			m.ui.SetSelectedTask(m.ui.SelectedTask() + 1)
		}
	case key.Matches(msg, m.keys.PrevProject):
		return m.switchProject(-1)
	case key.Matches(msg, m.keys.NextProject):
		return m.switchProject(1)
	case key.Matches(msg, m.keys.GrabTask):
		m.grabTask(b)
	case key.Matches(msg, m.keys.GrabColumn):
		m.grabColumn(b)
	case key.Matches(msg, m.keys.Sidebar):
		m.ui.ToggleSidebar()
		m.cfg.Preferences.SidebarCollapsed = m.ui.SidebarCollapsed()
		m.ensureVisible(b)
		return m.savePreferences()
	case key.Matches(msg, m.keys.Detail):
		if m.ui.DetailOpen() {
			m.ui.SetDetailOpen(false)
			m.detail = nil
			return nil
		}
		if task := m.selectedTask(b); task != nil {
			return m.loadDetail(task.ID)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m.loadBoard(m.currentProjectID())
	}

	m.ensureVisible(b)
	if m.ui.DetailOpen() {
		// Keep the pane on the selected card
		if task := m.selectedTask(b); task != nil && (m.detail == nil || m.detail.ID != task.ID) {
			return m.loadDetail(task.ID)
		}
	}
	return nil
}

func (m *Model) switchProject(delta int) tea.Cmd {
	idx := m.projectIdx + delta
	if idx < 0 || idx >= len(m.projects) {
		return nil
	}
	if m.busy() {
		m.notifications.Add(state.LevelWarning, reorder.ErrCommitInFlight.Error())
		return nil
	}
	m.ui.ResetSelection()
	m.ui.SetDetailOpen(false)
	m.detail = nil
	return m.loadBoard(m.projects[idx].ID)
}

func (m *Model) grabTask(b *models.Board) {
	task := m.selectedTask(b)
	if task == nil {
		m.notifications.Add(state.LevelInfo, "No task selected")
		return
	}
	if m.busy() {
		m.notifications.Add(state.LevelWarning, reorder.ErrCommitInFlight.Error())
		return
	}
	if err := m.tasks.DragStart(task.ID); err != nil {
		m.notifications.Add(state.LevelWarning, err.Error())
		return
	}
	m.ui.SetMode(state.GrabTaskMode)
}

func (m *Model) grabColumn(b *models.Board) {
	col := m.selectedColumn(b)
	if col == nil {
		return
	}
	if m.busy() {
		m.notifications.Add(state.LevelWarning, reorder.ErrCommitInFlight.Error())
		return
	}
	if err := m.columns.DragStart(col.ID); err != nil {
		m.notifications.Add(state.LevelWarning, err.Error())
		return
	}
	m.ui.SetMode(state.GrabColumnMode)
}

func (m *Model) handleGrabTask(msg tea.KeyPressMsg) tea.Cmd {
	drag, ok := m.tasks.Drag()
	if !ok {
		m.ui.SetMode(state.NormalMode)
		return nil
	}
	b := m.Board()
	colIdx := columnIndex(b, drag.TargetContainerID)

	var err error
	switch {
	case key.Matches(msg, m.keys.Left):
		if colIdx > 0 {
			target := b.Columns[colIdx-1].ID
			err = m.tasks.DragOver(target, min(drag.TargetIndex, len(b.TasksIn(target))))
		}
	case key.Matches(msg, m.keys.Right):
		if colIdx >= 0 && colIdx < len(b.Columns)-1 {
			target := b.Columns[colIdx+1].ID
			err = m.tasks.DragOver(target, min(drag.TargetIndex, len(b.TasksIn(target))))
		}
	case key.Matches(msg, m.keys.Up):
		if drag.TargetIndex > 0 {
			err = m.tasks.DragOver(drag.TargetContainerID, drag.TargetIndex-1)
		}
	case key.Matches(msg, m.keys.Down):
		err = m.tasks.DragOver(drag.TargetContainerID, drag.TargetIndex+1)
	case key.Matches(msg, m.keys.Drop):
		m.ui.SetMode(state.NormalMode)
		move, err := m.tasks.Drop()
		if err != nil || move == nil {
			return nil
		}
		return m.persist(m.tasks, *move)
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		if err := m.tasks.DragCancel(); err != nil {
			m.logger.Warn("cancel failed", "error", err)
		}
		m.ui.SetMode(state.NormalMode)
	}
	if err != nil {
		m.notifications.Add(state.LevelWarning, err.Error())
	}

	m.selectItem(reorder.ItemTask, drag.ActiveItemID)
	return nil
}

func (m *Model) handleGrabColumn(msg tea.KeyPressMsg) tea.Cmd {
	drag, ok := m.columns.Drag()
	if !ok {
		m.ui.SetMode(state.NormalMode)
		return nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Left, m.keys.MoveLeft):
		if drag.TargetIndex > 0 {
			err = m.columns.DragOver(drag.TargetContainerID, drag.TargetIndex-1)
		}
	case key.Matches(msg, m.keys.Right, m.keys.MoveRight):
		err = m.columns.DragOver(drag.TargetContainerID, drag.TargetIndex+1)
	case key.Matches(msg, m.keys.Drop):
		m.ui.SetMode(state.NormalMode)
		move, err := m.columns.Drop()
		if err != nil || move == nil {
			return nil
		}
		return m.persist(m.columns, *move)
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		if err := m.columns.DragCancel(); err != nil {
			m.logger.Warn("cancel failed", "error", err)
		}
		m.ui.SetMode(state.NormalMode)
	}
	if err != nil {
		m.notifications.Add(state.LevelWarning, err.Error())
	}

	m.selectItem(reorder.ItemColumn, drag.ActiveItemID)
	return nil
}

// selectItem moves the selection onto a task or column of the displayed board
func (m *Model) selectItem(itemType reorder.ItemType, id int) {
	b := m.Board()
	if b == nil {
		return
	}
	switch itemType {
	case reorder.ItemColumn:
		if idx := columnIndex(b, id); idx >= 0 {
			m.ui.SetSelectedColumn(idx)
			m.ui.SetSelectedTask(0)
		}
	case reorder.ItemTask:
		for ci, col := range b.Columns {
			for ti, t := range b.TasksIn(col.ID) {
				if t.ID == id {
					m.ui.SetSelectedColumn(ci)
					m.ui.SetSelectedTask(ti)
				}
			}
		}
	}
	m.ensureVisible(b)
}

func (m *Model) ensureVisible(b *models.Board) {
	if b == nil {
		return
	}
	m.ui.EnsureSelectionVisible(len(b.Columns))
	if col := m.selectedColumn(b); col != nil {
		visible := components.VisibleTasks(m.ui.ContentHeight(), m.detailedCards())
		m.ui.EnsureTaskVisible(col.ID, m.ui.SelectedTask(), visible)
	}
}

func (m *Model) detailedCards() bool {
	return m.cfg.Preferences.TaskDisplay == "detailed"
}

func columnIndex(b *models.Board, columnID int) int {
	for i, col := range b.Columns {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}
