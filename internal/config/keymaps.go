package config

// KeyMappings defines all configurable key bindings of the board
type KeyMappings struct {
	// Navigation
	PrevColumn  string `yaml:"prev_column"`
	NextColumn  string `yaml:"next_column"`
	PrevTask    string `yaml:"prev_task"`
	NextTask    string `yaml:"next_task"`
	NextProject string `yaml:"next_project"`
	PrevProject string `yaml:"prev_project"`

	// Drag and drop
	GrabTask   string `yaml:"grab_task"`
	GrabColumn string `yaml:"grab_column"`
	Drop       string `yaml:"drop"`
	Cancel     string `yaml:"cancel"`

	// View
	ToggleSidebar string `yaml:"toggle_sidebar"`
	ToggleDetail  string `yaml:"toggle_detail"`
	Refresh       string `yaml:"refresh"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn:  "h",
		NextColumn:  "l",
		PrevTask:    "k",
		NextTask:    "j",
		NextProject: "}",
		PrevProject: "{",

		GrabTask:   "space",
		GrabColumn: "m",
		Drop:       "enter",
		Cancel:     "esc",

		ToggleSidebar: "s",
		ToggleDetail:  "d",
		Refresh:       "r",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&k.PrevColumn, d.PrevColumn)
	fill(&k.NextColumn, d.NextColumn)
	fill(&k.PrevTask, d.PrevTask)
	fill(&k.NextTask, d.NextTask)
	fill(&k.NextProject, d.NextProject)
	fill(&k.PrevProject, d.PrevProject)
	fill(&k.GrabTask, d.GrabTask)
	fill(&k.GrabColumn, d.GrabColumn)
	fill(&k.Drop, d.Drop)
	fill(&k.Cancel, d.Cancel)
	fill(&k.ToggleSidebar, d.ToggleSidebar)
	fill(&k.ToggleDetail, d.ToggleDetail)
	fill(&k.Refresh, d.Refresh)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
