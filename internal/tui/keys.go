package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/tablero/internal/config"
)

// keyMap holds the board's bindings, built from the configured key mappings.
// Arrow keys always work alongside the configured letters.
type keyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	PrevProject key.Binding
	NextProject key.Binding
	GrabTask    key.Binding
	GrabColumn  key.Binding
	MoveLeft    key.Binding // "<" while a column is grabbed
	MoveRight   key.Binding // ">" while a column is grabbed
	Drop        key.Binding
	Cancel      key.Binding
	Sidebar     key.Binding
	Detail      key.Binding
	Refresh     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Left:        key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "left")),
		Right:       key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "right")),
		Up:          key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "up")),
		Down:        key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "down")),
		PrevProject: key.NewBinding(key.WithKeys(km.PrevProject), key.WithHelp(km.PrevProject, "prev project")),
		NextProject: key.NewBinding(key.WithKeys(km.NextProject), key.WithHelp(km.NextProject, "next project")),
		GrabTask:    key.NewBinding(key.WithKeys(km.GrabTask), key.WithHelp(km.GrabTask, "grab task")),
		GrabColumn:  key.NewBinding(key.WithKeys(km.GrabColumn), key.WithHelp(km.GrabColumn, "grab column")),
		MoveLeft:    key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "column left")),
		MoveRight:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "column right")),
		Drop:        key.NewBinding(key.WithKeys(km.Drop), key.WithHelp(km.Drop, "drop")),
		Cancel:      key.NewBinding(key.WithKeys(km.Cancel), key.WithHelp(km.Cancel, "cancel")),
		Sidebar:     key.NewBinding(key.WithKeys(km.ToggleSidebar), key.WithHelp(km.ToggleSidebar, "sidebar")),
		Detail:      key.NewBinding(key.WithKeys(km.ToggleDetail), key.WithHelp(km.ToggleDetail, "details")),
		Refresh:     key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Help:        key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:        key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.GrabTask, k.GrabColumn, k.Detail, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevProject, k.NextProject, k.Sidebar, k.Detail, k.Refresh},
		{k.GrabTask, k.GrabColumn, k.MoveLeft, k.MoveRight, k.Drop, k.Cancel},
		{k.Help, k.Quit},
	}
}

// grabHelp is shown while something is picked up
type grabHelp struct {
	keyMap
	column bool
}

func (g grabHelp) ShortHelp() []key.Binding {
	if g.column {
		return []key.Binding{g.Left, g.Right, g.Drop, g.Cancel}
	}
	return []key.Binding{g.Left, g.Right, g.Up, g.Down, g.Drop, g.Cancel}
}

func (g grabHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{g.ShortHelp()}
}
