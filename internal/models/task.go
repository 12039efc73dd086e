package models

import "time"

// Task is a single card on the daily board
type Task struct {
	ID          int
	Title       string
	Description string
	ColumnIndex int
	TaskDate    time.Time // calendar date the task belongs to, never changes
	CreatedAt   time.Time
	Archived    bool
	ArchivedAt  *time.Time // nil until the task is archived
}

// GetID lets the CLI formatter print just the ID in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// EditableOn reports whether the task may still be changed on the given day.
// Both conditions are required: an archived task dated today stays read-only.
func (t *Task) EditableOn(today time.Time) bool {
	return !t.Archived && t.TaskDate.Equal(today)
}
