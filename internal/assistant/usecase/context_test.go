package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-assistant/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{
			ID:          "t-1",
			Title:       "Finish quarterly report",
			Description: "Include revenue charts",
			Priority:    model.PriorityHigh,
			DueDate:     ptrTime(time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)),
			CreatedAt:   time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:          "t-2",
			Title:       "Book dentist",
			Priority:    model.PriorityMedium,
			Completed:   true,
			DueDate:     ptrTime(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)),
			CreatedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			CompletedAt: ptrTime(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)),
		},
		{
			ID:        "t-3",
			Title:     "Plan team offsite",
			Priority:  model.PriorityMedium,
			DueDate:   ptrTime(time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)),
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestSummarizeTasks(t *testing.T) {
	tc := summarizeTasks("u1", sampleTasks(), testNow)

	assert.Equal(t, "u1", tc.UserID)
	assert.Equal(t, 3, tc.Total)
	assert.Equal(t, 1, tc.Completed)
	assert.Equal(t, 2, tc.Pending)
	assert.Equal(t, 1, tc.HighPriority)
	assert.Equal(t, 1, tc.Overdue)
}

func TestSummarizeTasks_Invariants(t *testing.T) {
	priorities := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}
	var tasks []model.Task
	for i := 0; i < 40; i++ {
		task := model.Task{
			Title:     "task",
			Priority:  priorities[i%3],
			Completed: i%4 == 0,
		}
		switch i % 5 {
		case 0:
			task.DueDate = ptrTime(testNow.Add(-time.Duration(i) * time.Hour))
		case 1:
			task.DueDate = ptrTime(testNow.Add(time.Duration(i) * time.Hour))
		case 2:
			task.DueDate = ptrTime(testNow)
		}
		tasks = append(tasks, task)

		tc := summarizeTasks("u", tasks, testNow)
		require.Equal(t, tc.Total, tc.Completed+tc.Pending)
		require.LessOrEqual(t, tc.Overdue, tc.Pending)
		require.LessOrEqual(t, tc.HighPriority, tc.Total)
	}
}

func TestSummarizeTasks_Empty(t *testing.T) {
	tc := summarizeTasks("u1", nil, testNow)
	assert.Zero(t, tc.Total)
	assert.Equal(t, "User has 0 total tasks:\n- 0 completed\n- 0 pending\n- 0 high priority\n- 0 overdue\n\nTask List:", renderTaskContext(tc))
}

func TestRenderTaskContext(t *testing.T) {
	tc := summarizeTasks("u1", sampleTasks(), testNow)

	want := strings.Join([]string{
		"User has 3 total tasks:",
		"- 1 completed",
		"- 2 pending",
		"- 1 high priority",
		"- 1 overdue",
		"",
		"Task List:",
		"- [HIGH] Finish quarterly report | Due: 2026-03-09T17:00:00 | Include revenue charts",
		"- [MEDIUM] Book dentist (COMPLETED) | Due: 2026-03-02T09:00:00",
		"- [MEDIUM] Plan team offsite | Due: 2026-03-20T12:00:00",
	}, "\n")

	got := renderTaskContext(tc)
	assert.Equal(t, want, got)
	assert.Equal(t, got, renderTaskContext(tc), "rendering must be deterministic")

	for _, id := range []string{"t-1", "t-2", "t-3"} {
		assert.NotContains(t, got, id)
	}
	assert.NotContains(t, got, "2026-03-01", "creation timestamps must not leak")
}

func TestBuildTaskContext(t *testing.T) {
	tr := &mockTaskRepo{tasks: sampleTasks()}
	uc := newTestUseCase(t, &mockBackend{}, newMockRepo(), tr, 10)

	tc, err := uc.buildTaskContext(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, tc.Total)
	assert.Len(t, tc.Tasks, 3)
	assert.Equal(t, "Finish quarterly report", tc.Tasks[0].Title)
}

func TestBuildTaskContext_SourceError(t *testing.T) {
	tr := &mockTaskRepo{listErr: assert.AnError}
	uc := newTestUseCase(t, &mockBackend{}, newMockRepo(), tr, 10)

	_, err := uc.buildTaskContext(context.Background(), "u1")
	assert.ErrorIs(t, err, assert.AnError)
}

