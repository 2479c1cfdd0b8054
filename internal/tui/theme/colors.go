// Package theme holds the board's active colors
package theme

import "github.com/thenoetrevino/tablero/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	ColumnBorder   string
	TaskBorder     string
	SelectedBorder string
	GrabbedBorder  string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	ColumnBorder = colors.ColumnBorder
	TaskBorder = colors.TaskBorder
	SelectedBorder = colors.SelectedBorder
	GrabbedBorder = colors.GrabbedBorder
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
