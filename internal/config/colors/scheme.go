package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Per-status colors, keyed by status name. Statuses added to the
	// database get their color here; anything unlisted uses StatusFallback.
	Statuses       map[string]string `yaml:"statuses"`
	StatusFallback string            `yaml:"status_fallback"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Tag chip color for tags without one of their own
	Tag string `yaml:"tag"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Feedback colors
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// StatusColor returns the color for a status name, falling back to
// StatusFallback for statuses the scheme doesn't know.
func (c *ColorScheme) StatusColor(name string) string {
	if color, ok := c.Statuses[name]; ok && color != "" {
		return color
	}
	return c.StatusFallback
}

// ApplyDefaults fills in missing color values using the preset as base.
// If preset is specified, loads that preset first, then overrides with
// custom values.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Statuses == nil {
		c.Statuses = map[string]string{}
	}
	for name, color := range preset.Statuses {
		if c.Statuses[name] == "" {
			c.Statuses[name] = color
		}
	}
	if c.StatusFallback == "" {
		c.StatusFallback = preset.StatusFallback
	}
	if c.ColumnBorder == "" {
		c.ColumnBorder = preset.ColumnBorder
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.Tag == "" {
		c.Tag = preset.Tag
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Warning == "" {
		c.Warning = preset.Warning
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
}

// MergeFrom overrides this scheme with any non-empty values from other.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if len(other.Statuses) > 0 {
		if c.Statuses == nil {
			c.Statuses = map[string]string{}
		}
		for name, color := range other.Statuses {
			if color != "" {
				c.Statuses[name] = color
			}
		}
	}
	if other.StatusFallback != "" {
		c.StatusFallback = other.StatusFallback
	}
	if other.ColumnBorder != "" {
		c.ColumnBorder = other.ColumnBorder
	}
	if other.SelectedBorder != "" {
		c.SelectedBorder = other.SelectedBorder
	}
	if other.SelectedBg != "" {
		c.SelectedBg = other.SelectedBg
	}
	if other.Tag != "" {
		c.Tag = other.Tag
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.Success != "" {
		c.Success = other.Success
	}
	if other.Warning != "" {
		c.Warning = other.Warning
	}
	if other.Error != "" {
		c.Error = other.Error
	}
}
