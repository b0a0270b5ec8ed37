package repository

import (
	"time"

	"ai-task-assistant/internal/model"
)

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	Priority    model.Priority // default: medium
	Completed   bool
	DueDate     *time.Time
}

// ListTasksOptions selects the tasks of one user.
type ListTasksOptions struct {
	UserID string
}
