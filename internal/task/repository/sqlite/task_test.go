package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-assistant/internal/model"
	repo "ai-task-assistant/internal/task/repository"
	"ai-task-assistant/pkg/log"
	pkgSqlite "ai-task-assistant/pkg/sqlite"
)

func newTestRepository(t *testing.T) *implRepository {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), pkgSqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := New(db, log.NewNop()).(*implRepository)
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return r
}

func TestCreateAndListTasks(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	due := time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC)

	first, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      "u1",
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    model.PriorityHigh,
		DueDate:     &due,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, model.PriorityHigh, first.Priority)

	_, err = r.CreateTask(ctx, repo.CreateTaskOptions{UserID: "u1", Title: "Call bank", Completed: true})
	require.NoError(t, err)
	_, err = r.CreateTask(ctx, repo.CreateTaskOptions{UserID: "u2", Title: "Someone else's task"})
	require.NoError(t, err)

	tasks, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, "Write report", tasks[0].Title)
	assert.Equal(t, "Quarterly numbers", tasks[0].Description)
	require.NotNil(t, tasks[0].DueDate)
	assert.True(t, due.Equal(*tasks[0].DueDate))
	assert.False(t, tasks[0].Completed)
	assert.Nil(t, tasks[0].CompletedAt)

	assert.Equal(t, "Call bank", tasks[1].Title)
	assert.Equal(t, model.PriorityMedium, tasks[1].Priority)
	assert.True(t, tasks[1].Completed)
	assert.NotNil(t, tasks[1].CompletedAt)
	assert.Nil(t, tasks[1].DueDate)
}

func TestListTasks_Empty(t *testing.T) {
	r := newTestRepository(t)

	tasks, err := r.ListTasks(context.Background(), repo.ListTasksOptions{UserID: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateTask_InvalidOptions(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	tests := []struct {
		name string
		opt  repo.CreateTaskOptions
	}{
		{"missing user", repo.CreateTaskOptions{Title: "x"}},
		{"blank title", repo.CreateTaskOptions{UserID: "u1", Title: "   "}},
		{"unknown priority", repo.CreateTaskOptions{UserID: "u1", Title: "x", Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.CreateTask(ctx, tt.opt)
			assert.ErrorIs(t, err, repo.ErrInvalidOptions)
		})
	}

	_, err := r.ListTasks(ctx, repo.ListTasksOptions{})
	assert.ErrorIs(t, err, repo.ErrInvalidOptions)
}

func TestListTasks_ClosedDatabase(t *testing.T) {
	r := newTestRepository(t)
	require.NoError(t, r.db.Close())

	_, err := r.ListTasks(context.Background(), repo.ListTasksOptions{UserID: "u1"})
	assert.ErrorIs(t, err, repo.ErrFailedToList)
}
