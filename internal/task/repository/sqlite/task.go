package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-task-assistant/internal/model"
	repo "ai-task-assistant/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, priority, completed, due_date, created_at, completed_at`

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ListTasks returns all tasks of a user in creation order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	if opt.UserID == "" {
		return nil, repo.ErrInvalidOptions
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY created_at ASC, rowid ASC`
	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// CreateTask inserts a task and returns the stored entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if opt.UserID == "" || strings.TrimSpace(opt.Title) == "" {
		return model.Task{}, repo.ErrInvalidOptions
	}

	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.Task{}, repo.ErrInvalidOptions
	}

	now := r.now().UTC()
	t := model.Task{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    priority,
		Completed:   opt.Completed,
		DueDate:     opt.DueDate,
		CreatedAt:   now,
	}
	if t.Completed {
		t.CompletedAt = &now
	}

	const query = `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, string(t.Priority), t.Completed,
		formatNullTime(t.DueDate), formatTime(t.CreatedAt), formatNullTime(t.CompletedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (model.Task, error) {
	var (
		t           model.Task
		priority    string
		dueDate     sql.NullString
		createdAt   string
		completedAt sql.NullString
	)
	if err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &priority, &t.Completed, &dueDate, &createdAt, &completedAt); err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)

	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Task{}, err
	}
	if t.DueDate, err = parseNullTime(dueDate); err != nil {
		return model.Task{}, err
	}
	if t.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
