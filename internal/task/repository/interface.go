package repository

import (
	"context"

	"ai-task-assistant/internal/model"
)

// Repository is the data access interface for user tasks.
type Repository interface {
	// ListTasks returns every task owned by the user, oldest first. No pagination.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
}
