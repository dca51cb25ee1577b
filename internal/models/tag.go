package models

// Tag represents a user-defined label that can be applied to tasks
// Tags are global and identified by name, similar to GitHub labels
type Tag struct {
	ID    int
	Name  string
	Color string // optional hex color code (e.g., "#7D56F4"); empty when unset
}

// GetID implements the ID accessor the CLI formatter uses for quiet output
func (t *Tag) GetID() int { return t.ID }
