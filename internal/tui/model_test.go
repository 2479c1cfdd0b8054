package tui

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/reorder"
	"github.com/thenoetrevino/tablero/internal/services/task"
	"github.com/thenoetrevino/tablero/internal/testutil"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

var errSaveFailed = errors.New("disk full")

// failingBackend reads from the database but refuses every move
type failingBackend struct {
	*app.Backend
}

func (failingBackend) PersistMove(context.Context, reorder.Move) error {
	return errSaveFailed
}

type fixture struct {
	m       *Model
	app     *app.App
	db      *sql.DB
	project int
	cols    []int
}

func setup(t *testing.T, wrap func(*app.Backend) Backend) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	a := app.New(db)
	projectID, cols := testutil.CreateTestProject(t, db, "Launch")

	var backend Backend = a.Backend()
	if wrap != nil {
		backend = wrap(a.Backend())
	}
	m := New(context.Background(), backend, config.Default())
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	return &fixture{m: m, app: a, db: db, project: projectID, cols: cols}
}

// load runs a board load synchronously
func (f *fixture) load(t *testing.T) {
	t.Helper()
	run(t, f.m, f.m.loadBoard(f.project))
	require.NotNil(t, f.m.Board())
}

func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	m.Update(cmd())
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
	}
}

func (f *fixture) taskIDs(columnIdx int) []int {
	var ids []int
	b := f.m.Board()
	for _, t := range b.TasksIn(b.Columns[columnIdx].ID) {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestLoadBoard(t *testing.T) {
	f := setup(t, nil)
	testutil.CreateTestTask(t, f.db, f.cols[0], "Write docs")
	f.load(t)

	b := f.m.Board()
	assert.Equal(t, f.project, b.Project.ID)
	assert.Len(t, b.Columns, 3)

	content := f.m.View().Content
	assert.Contains(t, content, "Launch")
	assert.Contains(t, content, "Write docs")
	assert.Contains(t, content, "To Do")
}

func TestView_BeforeResize(t *testing.T) {
	db := testutil.SetupTestDB(t)
	m := New(context.Background(), app.New(db).Backend(), config.Default())
	assert.Equal(t, "Loading...", m.View().Content)
	assert.True(t, m.View().AltScreen)
}

func TestView_NoProjects(t *testing.T) {
	db := testutil.SetupTestDB(t)
	m := New(context.Background(), app.New(db).Backend(), config.Default())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	run(t, m, m.loadBoard(0))

	assert.Nil(t, m.Board())
	assert.Contains(t, m.View().Content, "No projects yet")
}

func TestGrabTask_MoveAndDrop(t *testing.T) {
	f := setup(t, nil)
	db := f.db
	a := testutil.CreateTestTask(t, db, f.cols[0], "A")
	b := testutil.CreateTestTask(t, db, f.cols[0], "B")
	f.load(t)

	assert.Nil(t, press(f.m, "space"))
	assert.Equal(t, state.GrabTaskMode, f.m.Mode())

	press(f.m, "l")
	assert.Equal(t, []int{b}, f.taskIDs(0))
	assert.Equal(t, []int{a}, f.taskIDs(1))
	assert.Equal(t, 1, f.m.ui.SelectedColumn(), "selection follows the card")

	cmd := press(f.m, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, state.NormalMode, f.m.Mode())
	assert.Equal(t, reorder.PhaseCommitting, f.m.tasks.Phase())
	assert.Equal(t, []int{a}, f.taskIDs(1), "drop shows before the save finishes")
	assert.Contains(t, f.m.View().Content, "saving")

	run(t, f.m, cmd)
	assert.Equal(t, reorder.PhaseIdle, f.m.tasks.Phase())
	assert.Equal(t, []int{b}, testutil.TaskIDs(t, db, f.cols[0]))
	assert.Equal(t, []int{a}, testutil.TaskIDs(t, db, f.cols[1]))
	assert.Empty(t, f.m.Notifications())
}

func TestGrabTask_ReorderWithinColumn(t *testing.T) {
	f := setup(t, nil)
	db := f.db
	a := testutil.CreateTestTask(t, db, f.cols[0], "A")
	b := testutil.CreateTestTask(t, db, f.cols[0], "B")
	c := testutil.CreateTestTask(t, db, f.cols[0], "C")
	f.load(t)

	cmd := press(f.m, "space", "j", "j", "j", "enter")
	require.NotNil(t, cmd)
	run(t, f.m, cmd)

	assert.Equal(t, []int{b, c, a}, testutil.TaskIDs(t, db, f.cols[0]))
	assert.Equal(t, 2, f.m.ui.SelectedTask())
}

func TestGrabTask_Cancel(t *testing.T) {
	f := setup(t, nil)
	db := f.db
	a := testutil.CreateTestTask(t, db, f.cols[0], "A")
	b := testutil.CreateTestTask(t, db, f.cols[0], "B")
	f.load(t)

	press(f.m, "space", "j")
	assert.Equal(t, []int{b, a}, f.taskIDs(0))

	assert.Nil(t, press(f.m, "esc"))
	assert.Equal(t, state.NormalMode, f.m.Mode())
	assert.Equal(t, []int{a, b}, f.taskIDs(0))
	assert.Equal(t, 0, f.m.ui.SelectedTask())
}

func TestGrabTask_DropInPlace(t *testing.T) {
	f := setup(t, nil)
	testutil.CreateTestTask(t, f.db, f.cols[0], "A")
	f.load(t)

	assert.Nil(t, press(f.m, "space", "enter"), "no-op drop saves nothing")
	assert.Equal(t, reorder.PhaseIdle, f.m.tasks.Phase())
}

func TestGrabTask_EmptyColumn(t *testing.T) {
	f := setup(t, nil)
	f.load(t)

	press(f.m, "space")
	assert.Equal(t, state.NormalMode, f.m.Mode())
	n, ok := f.m.notifications.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelInfo, n.Level)
}

func TestDropFailure_RollsBack(t *testing.T) {
	f := setup(t, func(b *app.Backend) Backend { return failingBackend{b} })
	db := f.db
	a := testutil.CreateTestTask(t, db, f.cols[0], "A")
	f.load(t)

	cmd := press(f.m, "space", "l", "l", "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, []int{a}, f.taskIDs(2))

	run(t, f.m, cmd)
	assert.Equal(t, []int{a}, f.taskIDs(0), "board rolls back")
	assert.Empty(t, f.taskIDs(2))
	assert.Equal(t, 0, f.m.ui.SelectedColumn())
	assert.Equal(t, []int{a}, testutil.TaskIDs(t, db, f.cols[0]))

	n, ok := f.m.notifications.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "disk full")
}

func TestGrabWhileSaving(t *testing.T) {
	f := setup(t, nil)
	db := f.db
	testutil.CreateTestTask(t, db, f.cols[0], "A")
	testutil.CreateTestTask(t, db, f.cols[0], "B")
	f.load(t)

	cmd := press(f.m, "space", "l", "enter")
	require.NotNil(t, cmd)

	press(f.m, "h", "space")
	assert.Equal(t, state.NormalMode, f.m.Mode())
	n, ok := f.m.notifications.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelWarning, n.Level)
	assert.Equal(t, reorder.ErrCommitInFlight.Error(), n.Message)

	run(t, f.m, cmd)
	assert.Nil(t, press(f.m, "space"))
	assert.Equal(t, state.GrabTaskMode, f.m.Mode())
}

func TestReloadDuringSave_IsDeferred(t *testing.T) {
	f := setup(t, nil)
	db := f.db
	a := testutil.CreateTestTask(t, db, f.cols[0], "A")
	f.load(t)

	cmd := press(f.m, "space", "l", "enter")
	require.NotNil(t, cmd)

	// A change made elsewhere while the move is in flight
	c := testutil.CreateTestTask(t, db, f.cols[2], "C")
	run(t, f.m, f.m.loadBoard(f.project))
	require.True(t, f.m.pending)
	assert.Empty(t, f.taskIDs(2), "reload waits for the save")
	assert.Equal(t, []int{a}, f.taskIDs(1))

	_, reload := f.m.Update(cmd())
	require.NotNil(t, reload)
	assert.False(t, f.m.pending)
	run(t, f.m, reload)
	assert.Equal(t, []int{c}, f.taskIDs(2))
	assert.Equal(t, []int{a}, f.taskIDs(1))
}

func TestGrabColumn_Reorder(t *testing.T) {
	f := setup(t, nil)
	f.load(t)

	press(f.m, "m")
	assert.Equal(t, state.GrabColumnMode, f.m.Mode())

	press(f.m, ">")
	assert.Equal(t, f.cols[0], f.m.Board().Columns[1].ID)
	assert.Equal(t, 1, f.m.ui.SelectedColumn())

	cmd := press(f.m, "enter")
	require.NotNil(t, cmd)
	run(t, f.m, cmd)

	cols, err := f.app.ColumnService.GetColumnsByProject(context.Background(), f.project)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, []int{f.cols[1], f.cols[0], f.cols[2]}, []int{cols[0].ID, cols[1].ID, cols[2].ID})
}

func TestGrabColumn_Cancel(t *testing.T) {
	f := setup(t, nil)
	f.load(t)

	press(f.m, "l", "m", "h", "esc")
	assert.Equal(t, state.NormalMode, f.m.Mode())
	assert.Equal(t, f.cols[1], f.m.Board().Columns[1].ID)
	assert.Equal(t, 1, f.m.ui.SelectedColumn())
}

func TestDetailPane(t *testing.T) {
	f := setup(t, nil)
	db := f.db
	id := testutil.CreateTestTask(t, db, f.cols[0], "A")
	desc := "Ship it"
	require.NoError(t, f.app.TaskService.UpdateTask(context.Background(), task.UpdateTaskRequest{ID: id, Description: &desc}))
	f.load(t)

	cmd := press(f.m, "d")
	require.NotNil(t, cmd)
	run(t, f.m, cmd)
	assert.True(t, f.m.ui.DetailOpen())
	assert.Contains(t, f.m.View().Content, "Ship")

	assert.Nil(t, press(f.m, "d"))
	assert.False(t, f.m.ui.DetailOpen())
}

func TestHelpMode(t *testing.T) {
	f := setup(t, nil)
	f.load(t)

	press(f.m, "?")
	assert.Equal(t, state.HelpMode, f.m.Mode())
	assert.Contains(t, f.m.View().Content, "grab task")

	assert.Nil(t, press(f.m, "q"), "q closes help instead of quitting")
	assert.Equal(t, state.NormalMode, f.m.Mode())
}

func TestSwitchProject(t *testing.T) {
	f := setup(t, nil)
	other, _ := testutil.CreateTestProject(t, f.db, "Other")
	f.load(t)

	run(t, f.m, press(f.m, "}"))
	assert.Equal(t, other, f.m.Board().Project.ID)

	assert.Nil(t, press(f.m, "}"), "no project past the last one")
	run(t, f.m, press(f.m, "{"))
	assert.Equal(t, f.project, f.m.Board().Project.ID)
}

func TestEventStream(t *testing.T) {
	f := setup(t, nil)
	f.load(t)

	ch := make(chan events.Event, 1)
	_, cmd := f.m.Update(subscribedMsg{ch: ch})
	require.NotNil(t, cmd)

	id := testutil.CreateTestTask(t, f.db, f.cols[1], "Remote")
	ch <- events.NewEvent(events.EventTaskChanged, f.project, id)
	_, cmd = f.m.Update(cmd())
	require.NotNil(t, cmd)

	close(ch)
	msgs := cmd().(tea.BatchMsg)
	for _, c := range msgs {
		run(t, f.m, c)
	}
	assert.Equal(t, []int{id}, f.taskIDs(1))
	n, ok := f.m.notifications.Latest()
	require.True(t, ok)
	assert.Equal(t, "Live updates stopped", n.Message)
}

func TestQuit(t *testing.T) {
	f := setup(t, nil)
	f.load(t)

	cmd := press(f.m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestToggleSidebar(t *testing.T) {
	f := setup(t, nil)
	f.load(t)
	require.False(t, f.m.ui.SidebarCollapsed())

	assert.Nil(t, press(f.m, "s"), "preferences are only saved when asked to")
	assert.True(t, f.m.ui.SidebarCollapsed())
	assert.True(t, f.m.cfg.Preferences.SidebarCollapsed)
	assert.NotContains(t, f.m.View().Content, "Projects")
}
