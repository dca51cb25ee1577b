package models

// LinkTypeDependency is the default (and currently only seeded) link type.
const LinkTypeDependency = "dependency"

// TaskLink is a directed edge between two tasks.
// FromTaskID depends on ToTaskID: the "to" side is the prerequisite that
// must finish first. The link set is kept acyclic at insert time.
type TaskLink struct {
	ID         int
	FromTaskID int
	ToTaskID   int
	Type       string
}
