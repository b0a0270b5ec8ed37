package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-task-assistant/internal/assistant"
	"ai-task-assistant/internal/model"
	taskRepo "ai-task-assistant/internal/task/repository"
)

// buildTaskContext loads every task of the user and derives the counters
// against a single now.
func (uc *implUseCase) buildTaskContext(ctx context.Context, userID string) (assistant.TaskContext, error) {
	tasks, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: userID})
	if err != nil {
		return assistant.TaskContext{}, err
	}
	return summarizeTasks(userID, tasks, uc.now()), nil
}

func summarizeTasks(userID string, tasks []model.Task, now time.Time) assistant.TaskContext {
	tc := assistant.TaskContext{
		UserID: userID,
		Total:  len(tasks),
		Tasks:  tasks,
	}
	for _, t := range tasks {
		if t.Completed {
			tc.Completed++
		} else {
			tc.Pending++
		}
		if t.Priority == model.PriorityHigh {
			tc.HighPriority++
		}
		if t.IsOverdue(now) {
			tc.Overdue++
		}
	}
	return tc
}

// renderTaskContext flattens the snapshot into the text embedded in prompts.
// Only priority, title, completion, due date and description are exposed.
func renderTaskContext(tc assistant.TaskContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User has %d total tasks:\n", tc.Total)
	fmt.Fprintf(&sb, "- %d completed\n", tc.Completed)
	fmt.Fprintf(&sb, "- %d pending\n", tc.Pending)
	fmt.Fprintf(&sb, "- %d high priority\n", tc.HighPriority)
	fmt.Fprintf(&sb, "- %d overdue\n", tc.Overdue)
	sb.WriteString("\nTask List:")

	for _, t := range tc.Tasks {
		fmt.Fprintf(&sb, "\n- [%s] %s", strings.ToUpper(string(t.Priority)), t.Title)
		if t.Completed {
			sb.WriteString(" (COMPLETED)")
		}
		if t.DueDate != nil {
			sb.WriteString(" | Due: " + t.DueDate.UTC().Format(dueDateLayout))
		}
		if t.Description != "" {
			sb.WriteString(" | " + t.Description)
		}
	}
	return sb.String()
}
