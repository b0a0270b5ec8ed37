package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"ai-task-assistant/internal/assistant"
	repo "ai-task-assistant/internal/assistant/repository"
	"ai-task-assistant/internal/model"
	taskRepo "ai-task-assistant/internal/task/repository"
	"ai-task-assistant/pkg/llmprovider"
	"ai-task-assistant/pkg/ratelimit"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockBackend replays scripted replies in order and records every request.
type mockBackend struct {
	mu       sync.Mutex
	replies  []mockReply
	requests []*llmprovider.Request
}

type mockReply struct {
	text   string
	input  int
	output int
	err    error
}

func (m *mockBackend) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if len(m.replies) == 0 {
		return nil, errors.New("mockBackend: no reply scripted")
	}
	r := m.replies[0]
	m.replies = m.replies[1:]
	if r.err != nil {
		return nil, r.err
	}
	return &llmprovider.Response{
		Content:   llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: r.text}}},
		ModelName: "claude-test",
		Usage:     &llmprovider.Usage{InputTokens: r.input, OutputTokens: r.output, TotalTokens: r.input + r.output},
	}, nil
}

func (m *mockBackend) Model() string {
	return "claude-test"
}

func (m *mockBackend) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// mockRepo is an in-memory interaction store.
type mockRepo struct {
	mu        sync.Mutex
	items     map[string]assistant.Interaction
	order     []string
	createErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[string]assistant.Interaction)}
}

func (m *mockRepo) CreateInteraction(ctx context.Context, opt repo.CreateInteractionOptions) (assistant.Interaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return assistant.Interaction{}, m.createErr
	}
	it := assistant.Interaction{
		ID:             opt.ID,
		UserID:         opt.UserID,
		QueryText:      opt.QueryText,
		Status:         assistant.StatusPending,
		QueryTimestamp: opt.QueryTimestamp,
	}
	m.items[it.ID] = it
	m.order = append(m.order, it.ID)
	return it, nil
}

func (m *mockRepo) UpdateInteraction(ctx context.Context, opt repo.UpdateInteractionOptions) (assistant.Interaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[opt.ID]
	if !ok {
		return assistant.Interaction{}, nil
	}
	it.Status = opt.Status
	it.ResponseText = opt.ResponseText
	it.ErrorMessage = opt.ErrorMessage
	it.TokenCount = opt.TokenCount
	it.SuggestionsJSON = opt.SuggestionsJSON
	it.ResponseTimestamp = opt.ResponseTimestamp
	m.items[opt.ID] = it
	return it, nil
}

func (m *mockRepo) GetOneInteraction(ctx context.Context, opt repo.GetOneInteractionOptions) (assistant.Interaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[opt.ID]
	if !ok || it.UserID != opt.UserID {
		return assistant.Interaction{}, nil
	}
	return it, nil
}

func (m *mockRepo) ListInteractions(ctx context.Context, opt repo.ListInteractionsOptions) ([]assistant.Interaction, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []assistant.Interaction
	for _, id := range m.order {
		if it := m.items[id]; it.UserID == opt.UserID {
			all = append(all, it)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].QueryTimestamp.After(all[j].QueryTimestamp) })

	total := len(all)
	if opt.Offset >= total {
		return []assistant.Interaction{}, total, nil
	}
	end := min(opt.Offset+opt.Limit, total)
	return all[opt.Offset:end], total, nil
}

func (m *mockRepo) only(t *testing.T) assistant.Interaction {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.order) != 1 {
		t.Fatalf("expected exactly one interaction, got %d", len(m.order))
	}
	return m.items[m.order[0]]
}

// mockTaskRepo serves a fixed task list and records created tasks.
type mockTaskRepo struct {
	mu        sync.Mutex
	tasks     []model.Task
	listErr   error
	failTitle map[string]bool
	created   []taskRepo.CreateTaskOptions
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tasks, nil
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTitle[opt.Title] {
		return model.Task{}, taskRepo.ErrFailedToInsert
	}
	m.created = append(m.created, opt)
	return model.Task{ID: "task-" + opt.Title, UserID: opt.UserID, Title: opt.Title, Priority: opt.Priority}, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// newTestUseCase wires a use case with fixed clock and IDs.
func newTestUseCase(t *testing.T, backend Backend, r *mockRepo, tr *mockTaskRepo, limit int) *implUseCase {
	t.Helper()
	gov, err := ratelimit.New(ratelimit.Config{
		RequestsPerMinute: limit,
		Now:               func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("ratelimit.New: %v", err)
	}

	uc := New(&mockLogger{}, r, tr, backend, gov, Config{MaxTokens: 1000})
	uc.now = func() time.Time { return testNow }
	seq := 0
	uc.newID = func() string {
		seq++
		return []string{
			"00000000-0000-0000-0000-000000000001",
			"00000000-0000-0000-0000-000000000002",
			"00000000-0000-0000-0000-000000000003",
		}[(seq-1)%3]
	}
	return uc
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
