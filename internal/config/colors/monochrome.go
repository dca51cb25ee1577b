package colors

// Monochrome returns a black and white color scheme for terminals where
// color is unwanted or unavailable.
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Statuses
		Statuses: map[string]string{
			"TODO":        "#C0C0C0",
			"IN_PROGRESS": "#FFFFFF",
			"BLOCKED":     "#808080",
			"DONE":        "#585858",
		},
		StatusFallback: "#C0C0C0",

		// UI elements
		ColumnBorder:   "#808080",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",
		Tag:            "#C0C0C0",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#C0C0C0",

		// Feedback
		Success: "#FFFFFF",
		Warning: "#C0C0C0",
		Error:   "#FFFFFF",
	}
}
