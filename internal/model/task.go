package model

import "time"

// Priority is the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a read-only view of one user task.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Priority    Priority
	Completed   bool
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// IsOverdue reports whether the task is pending with a due date strictly before now.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}
