package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Statuses
		Statuses: map[string]string{
			"TODO":        "#5F87D7",
			"IN_PROGRESS": "#FFD700",
			"BLOCKED":     "#FF5F5F",
			"DONE":        "#5FD75F",
		},
		StatusFallback: "#D0D0D0",

		// UI elements
		ColumnBorder:   "#5F87D7",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		Tag:            "#00AFFF",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Feedback
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}
