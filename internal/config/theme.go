package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`
	GrabbedBorder  string `yaml:"grabbed_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",
		Accent: "#874BFD",

		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		GrabbedBorder:  "#FFD700",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",

		ColumnBorder:   "#808080",
		TaskBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		GrabbedBorder:  "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#505050",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",
	}
}

// Preset returns a preset color scheme by name
func Preset(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// fields lists every color slot, for applying defaults and merging
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.ColumnBorder, &c.TaskBorder, &c.SelectedBorder, &c.GrabbedBorder,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := Preset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	mine, base := c.fields(), preset.fields()
	for i, v := range mine {
		if *v == "" {
			*v = *base[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	mine, theirs := c.fields(), other.fields()
	for i, v := range theirs {
		if *v != "" {
			*mine[i] = *v
		}
	}
}
