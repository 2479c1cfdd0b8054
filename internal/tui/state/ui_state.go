// Package state holds the board's view state: selection, viewport, modes and
// notifications. Board contents live in the reorder coordinators.
package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keys are active.
type Mode int

const (
	NormalMode     Mode = iota // Default navigation mode
	GrabTaskMode               // A task is picked up; arrows move the drop target
	GrabColumnMode             // A column is picked up; left/right move it
	HelpMode                   // Full key help is shown
)

func (m Mode) String() string {
	switch m {
	case GrabTaskMode:
		return "MOVE TASK"
	case GrabColumnMode:
		return "MOVE COLUMN"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

const (
	// ColumnWidth is a column's outer width including border, padding and spacing
	ColumnWidth = 36
	// SidebarWidth is the project sidebar's outer width when expanded
	SidebarWidth = 24
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedTask   int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int
	viewportSize   int

	// Key: columnID, Value: index of first visible task
	taskScrollOffsets map[int]int

	sidebarCollapsed bool
	detailOpen       bool
}

// NewUIState creates a new UIState with default values
func NewUIState(sidebarCollapsed bool) *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1,
		taskScrollOffsets: make(map[int]int),
		sidebarCollapsed:  sidebarCollapsed,
	}
}

// SelectedColumn returns the index of the currently selected column
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(0, index)
}

// SelectedTask returns the index of the currently selected task
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(0, index)
}

// Width returns the current terminal width
func (s *UIState) Width() int {
	return s.width
}

// SetSize updates the terminal size and recalculates the viewport
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.calculateViewportSize()
}

// Height returns the current terminal height
func (s *UIState) Height() int {
	return s.height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus tab bar, status bar and help line, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3
	const footerHeight = 2
	return max(s.height-tabBarHeight-footerHeight, 5)
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// SidebarCollapsed reports whether the project sidebar is hidden
func (s *UIState) SidebarCollapsed() bool {
	return s.sidebarCollapsed
}

// ToggleSidebar shows or hides the project sidebar
func (s *UIState) ToggleSidebar() {
	s.sidebarCollapsed = !s.sidebarCollapsed
	s.calculateViewportSize()
}

// DetailOpen reports whether the task detail pane is shown
func (s *UIState) DetailOpen() bool {
	return s.detailOpen
}

// SetDetailOpen shows or hides the task detail pane
func (s *UIState) SetDetailOpen(open bool) {
	s.detailOpen = open
}

// ViewportOffset returns the index of the leftmost visible column
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns fit next to the sidebar.
// Four characters are reserved for scroll indicators.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	available := s.width - 4
	if !s.sidebarCollapsed {
		available -= SidebarWidth
	}
	s.viewportSize = max(1, available/ColumnWidth)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen
func (s *UIState) EnsureSelectionVisible(columnsLen int) {
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.selectedColumn - s.viewportSize + 1
	}
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// ResetSelection resets column and task selection to zero.
// Called when switching projects.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
	s.taskScrollOffsets = make(map[int]int)
}

// TaskScrollOffset returns the vertical scroll offset for a given column
func (s *UIState) TaskScrollOffset(columnID int) int {
	return s.taskScrollOffsets[columnID]
}

// EnsureTaskVisible adjusts the scroll offset so the selected task is visible
func (s *UIState) EnsureTaskVisible(columnID, selectedTaskIdx, visibleCount int) {
	offset := s.TaskScrollOffset(columnID)
	if selectedTaskIdx < offset {
		s.taskScrollOffsets[columnID] = selectedTaskIdx
	}
	if selectedTaskIdx >= offset+visibleCount {
		s.taskScrollOffsets[columnID] = selectedTaskIdx - visibleCount + 1
	}
}
