package models

// Status represents a workflow lane a task can sit in (e.g., "TODO", "DONE")
// Statuses live in the database so new lanes can be added without a code change.
// Board columns follow Position order.
type Status struct {
	Name     string
	Position int
}
