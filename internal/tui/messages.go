package tui

import (
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/reorder"
)

// boardLoadedMsg carries a fresh project list and the selected project's board
type boardLoadedMsg struct {
	projects []*models.Project
	board    *models.Board // nil when there are no projects
	err      error
}

// moveSettledMsg reports the outcome of persisting a drop
type moveSettledMsg struct {
	move reorder.Move
	err  error
}

// detailLoadedMsg carries the task shown in the detail pane
type detailLoadedMsg struct {
	detail *models.TaskDetail
	err    error
}

// subscribedMsg hands the event stream to the update loop
type subscribedMsg struct {
	ch  <-chan events.Event
	err error
}

// eventMsg is one change published by the server
type eventMsg struct {
	event events.Event
}

// streamClosedMsg is sent when the event stream ends
type streamClosedMsg struct{}
