// Package tui is the keyboard board: projects as tabs, columns side by side
// and cards that can be picked up and dropped elsewhere. Every drag runs
// through a reorder.Coordinator, so a drop shows up at once and is rolled
// back if saving fails.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/converters"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/reorder"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Backend is where the board is read from and moves are saved to.
// app.Backend serves a local database; client.Client a running server.
type Backend interface {
	reorder.Persister
	ListProjects(ctx context.Context) ([]*models.Project, error)
	LoadBoard(ctx context.Context, projectID int) (*models.Board, error)
	TaskDetail(ctx context.Context, taskID int) (*models.TaskDetail, error)
}

// Subscriber opens a stream of board changes; projectID 0 means all projects
type Subscriber func(ctx context.Context, projectID int) (<-chan events.Event, error)

// Option configures a Model
type Option func(*Model)

// WithSubscriber reloads the board whenever the stream reports a change
func WithSubscriber(s Subscriber) Option {
	return func(m *Model) {
		m.subscribe = s
	}
}

// WithRemote labels the status bar with the server address
func WithRemote(addr string) Option {
	return func(m *Model) {
		m.remote = addr
	}
}

// WithSavedPreferences writes UI preferences back to the config file when they change
func WithSavedPreferences() Option {
	return func(m *Model) {
		m.savePrefs = true
	}
}

// WithLogger sets the model's logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// Model represents the application state for the TUI
type Model struct {
	ctx       context.Context
	backend   Backend
	cfg       *config.Config
	keys      keyMap
	help      help.Model
	logger    *slog.Logger
	subscribe Subscriber
	remote    string
	savePrefs bool

	projects   []*models.Project
	projectIdx int
	board      *models.Board // as last loaded; drags live in the coordinators
	pending    bool          // a reload arrived mid-drag
	loadErr    error

	tasks   *reorder.Coordinator
	columns *reorder.Coordinator

	ui            *state.UIState
	notifications *state.NotificationState
	detail        *models.TaskDetail

	stream <-chan events.Event
}

// New creates the board model. Call Run, or hand it to tea.NewProgram.
func New(ctx context.Context, backend Backend, cfg *config.Config, opts ...Option) *Model {
	components.InitStyles(cfg.ColorScheme)

	m := &Model{
		ctx:           ctx,
		backend:       backend,
		cfg:           cfg,
		keys:          newKeyMap(cfg.KeyMappings),
		help:          help.New(),
		logger:        slog.Default(),
		ui:            state.NewUIState(cfg.Preferences.SidebarCollapsed),
		notifications: state.NewNotificationState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.resetCoordinators(&models.Board{Project: &models.Project{}})
	return m
}

// Run starts the program and blocks until the user quits
func Run(ctx context.Context, backend Backend, cfg *config.Config, opts ...Option) error {
	p := tea.NewProgram(New(ctx, backend, cfg, opts...), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init loads the first board and starts listening for changes
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoard(0), m.subscribeCmd())
}

// Board returns the board as currently displayed, drags included
func (m *Model) Board() *models.Board {
	if m.board == nil {
		return nil
	}
	return converters.Project(converters.Project(m.board, m.columns.Board()), m.tasks.Board())
}

// Mode returns the current interaction mode
func (m *Model) Mode() state.Mode {
	return m.ui.Mode()
}

// Notifications returns the pending notifications, oldest first
func (m *Model) Notifications() []state.Notification {
	return m.notifications.All()
}

func (m *Model) resetCoordinators(board *models.Board) {
	opts := []reorder.Option{reorder.WithNotifier(m.notifications), reorder.WithLogger(m.logger)}
	m.tasks = reorder.NewCoordinator(converters.TaskBoard(board), m.backend, opts...)
	m.columns = reorder.NewCoordinator(converters.ColumnBoard(board), m.backend, opts...)
}

// busy reports whether a drag or a save is in progress
func (m *Model) busy() bool {
	return m.tasks.Phase() != reorder.PhaseIdle || m.columns.Phase() != reorder.PhaseIdle
}

func (m *Model) currentProjectID() int {
	if m.board == nil || m.board.Project == nil {
		return 0
	}
	return m.board.Project.ID
}

// selectedColumn returns the selected column of the displayed board
func (m *Model) selectedColumn(b *models.Board) *models.Column {
	if b == nil || len(b.Columns) == 0 {
		return nil
	}
	return b.Columns[min(m.ui.SelectedColumn(), len(b.Columns)-1)]
}

// selectedTask returns the selected card of the displayed board
func (m *Model) selectedTask(b *models.Board) *models.TaskSummary {
	col := m.selectedColumn(b)
	if col == nil {
		return nil
	}
	tasks := b.TasksIn(col.ID)
	if m.ui.SelectedTask() >= len(tasks) {
		return nil
	}
	return tasks[m.ui.SelectedTask()]
}

func (m *Model) loadBoard(projectID int) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		projects, err := backend.ListProjects(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		if len(projects) == 0 {
			return boardLoadedMsg{projects: projects}
		}

		id := projects[0].ID
		for _, p := range projects {
			if p.ID == projectID {
				id = projectID
				break
			}
		}
		board, err := backend.LoadBoard(ctx, id)
		return boardLoadedMsg{projects: projects, board: board, err: err}
	}
}

func (m *Model) loadDetail(taskID int) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		detail, err := backend.TaskDetail(ctx, taskID)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m *Model) persist(c *reorder.Coordinator, move reorder.Move) tea.Cmd {
	persister, ctx := c.Persister(), m.ctx
	return func() tea.Msg {
		return moveSettledMsg{move: move, err: persister.PersistMove(ctx, move)}
	}
}

func (m *Model) subscribeCmd() tea.Cmd {
	if m.subscribe == nil {
		return nil
	}
	subscribe, ctx := m.subscribe, m.ctx
	return func() tea.Msg {
		ch, err := subscribe(ctx, 0)
		return subscribedMsg{ch: ch, err: err}
	}
}

func (m *Model) savePreferences() tea.Cmd {
	if !m.savePrefs {
		return nil
	}
	cfg, logger := m.cfg, m.logger
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save preferences", "error", err)
		}
		return nil
	}
}

func waitForEvent(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg{event: e}
	}
}
