package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-assistant/internal/assistant"
	repo "ai-task-assistant/internal/assistant/repository"
	"ai-task-assistant/internal/model"
)

const confirmID = "6f1c1f5e-8a0b-4f55-9a65-3f0a3c1b2d4e"

func seedInteraction(t *testing.T, r *mockRepo, owner, suggestionsJSON string) {
	t.Helper()
	_, err := r.CreateInteraction(context.Background(), repo.CreateInteractionOptions{
		ID: confirmID, UserID: owner, QueryText: "break it down", QueryTimestamp: testNow,
	})
	require.NoError(t, err)
	_, err = r.UpdateInteraction(context.Background(), repo.UpdateInteractionOptions{
		ID: confirmID, Status: assistant.StatusCompleted, SuggestionsJSON: suggestionsJSON,
	})
	require.NoError(t, err)
}

func suggestionsJSON(t *testing.T, s ...assistant.Suggestion) string {
	t.Helper()
	b, err := json.Marshal(s)
	require.NoError(t, err)
	return string(b)
}

func TestConfirmBreakdown(t *testing.T) {
	r := newMockRepo()
	tr := &mockTaskRepo{}
	seedInteraction(t, r, testScope.UserID, suggestionsJSON(t,
		assistant.Suggestion{Type: "task_breakdown", Title: "Draft outline", Description: "Skeleton first"},
		assistant.Suggestion{Type: "reminder", Title: "Ignored"},
		assistant.Suggestion{Type: "task_breakdown", Title: "", Description: "No title"},
	))
	uc := newTestUseCase(t, &mockBackend{}, r, tr, 10)

	out, err := uc.ConfirmBreakdown(context.Background(), testScope, assistant.ConfirmInput{InteractionID: confirmID})
	require.NoError(t, err)

	assert.Equal(t, 2, out.CreatedTasks)
	assert.Equal(t, []string{"task-Draft outline", "task-Untitled Task"}, out.TaskIDs)
	assert.Equal(t, "Successfully created 2 tasks from AI suggestions", out.Message)

	require.Len(t, tr.created, 2)
	for _, c := range tr.created {
		assert.Equal(t, testScope.UserID, c.UserID)
		assert.Equal(t, model.PriorityMedium, c.Priority)
		assert.False(t, c.Completed)
	}
	assert.Equal(t, "Skeleton first", tr.created[0].Description)
}

func TestConfirmBreakdown_UppercaseID(t *testing.T) {
	r := newMockRepo()
	seedInteraction(t, r, testScope.UserID, suggestionsJSON(t, assistant.Suggestion{Type: "task_breakdown", Title: "A"}))
	uc := newTestUseCase(t, &mockBackend{}, r, &mockTaskRepo{}, 10)

	out, err := uc.ConfirmBreakdown(context.Background(), testScope, assistant.ConfirmInput{
		InteractionID: "6F1C1F5E-8A0B-4F55-9A65-3F0A3C1B2D4E",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.CreatedTasks)
}

func TestConfirmBreakdown_PartialSuccess(t *testing.T) {
	r := newMockRepo()
	tr := &mockTaskRepo{failTitle: map[string]bool{"B": true}}
	seedInteraction(t, r, testScope.UserID, suggestionsJSON(t,
		assistant.Suggestion{Type: "task_breakdown", Title: "A"},
		assistant.Suggestion{Type: "task_breakdown", Title: "B"},
		assistant.Suggestion{Type: "task_breakdown", Title: "C"},
	))
	uc := newTestUseCase(t, &mockBackend{}, r, tr, 10)

	out, err := uc.ConfirmBreakdown(context.Background(), testScope, assistant.ConfirmInput{InteractionID: confirmID})
	require.NoError(t, err)
	assert.Equal(t, 2, out.CreatedTasks)
	assert.Equal(t, []string{"task-A", "task-C"}, out.TaskIDs)
}

func TestConfirmBreakdown_Errors(t *testing.T) {
	eleven := make([]assistant.Suggestion, 11)
	for i := range eleven {
		eleven[i] = assistant.Suggestion{Type: "task_breakdown", Title: fmt.Sprintf("S%d", i)}
	}

	tests := []struct {
		name      string
		id        string
		owner     string
		stored    string
		failTitle map[string]bool
		wantErr   error
	}{
		{name: "invalid id", id: "not-a-uuid", owner: testScope.UserID, stored: "[]", wantErr: assistant.ErrInvalidInteractionID},
		{name: "unknown id", id: "00000000-0000-0000-0000-0000000000ff", owner: testScope.UserID, stored: "[]", wantErr: assistant.ErrInteractionNotFound},
		{name: "owned by someone else", id: confirmID, owner: "intruder", stored: "[]", wantErr: assistant.ErrInteractionNotFound},
		{name: "no stored suggestions", id: confirmID, owner: testScope.UserID, stored: "", wantErr: assistant.ErrNoSuggestions},
		{name: "corrupt json", id: confirmID, owner: testScope.UserID, stored: "{not json", wantErr: assistant.ErrCorruptSuggestions},
		{name: "no breakdown entries", id: confirmID, owner: testScope.UserID, stored: `[{"type":"reminder","title":"x"}]`, wantErr: assistant.ErrNoSuggestions},
		{name: "more than ten", id: confirmID, owner: testScope.UserID, stored: suggestionsJSON(t, eleven...), wantErr: assistant.ErrTooManySuggestions},
		{
			name: "every creation fails", id: confirmID, owner: testScope.UserID,
			stored:    `[{"type":"task_breakdown","title":"X"}]`,
			failTitle: map[string]bool{"X": true},
			wantErr:   assistant.ErrNoTasksCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMockRepo()
			seedInteraction(t, r, tt.owner, tt.stored)
			tr := &mockTaskRepo{failTitle: tt.failTitle}
			uc := newTestUseCase(t, &mockBackend{}, r, tr, 10)

			_, err := uc.ConfirmBreakdown(context.Background(), testScope, assistant.ConfirmInput{InteractionID: tt.id})
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr != assistant.ErrNoTasksCreated {
				assert.Empty(t, tr.created)
			}
		})
	}
}

func TestRateLimitAdministration(t *testing.T) {
	backend := &mockBackend{replies: []mockReply{{text: "a"}, {text: "b"}}}
	uc := newTestUseCase(t, backend, newMockRepo(), &mockTaskRepo{}, 3)
	ctx := context.Background()

	remaining, limit := uc.RemainingRequests(ctx, testScope)
	assert.Equal(t, 3, remaining)
	assert.Equal(t, 3, limit)

	_, err := uc.Query(ctx, testScope, assistant.QueryInput{Query: "hello"})
	require.NoError(t, err)
	remaining, _ = uc.RemainingRequests(ctx, testScope)
	assert.Equal(t, 2, remaining)

	uc.ResetRateLimit(ctx, testScope.UserID)
	remaining, _ = uc.RemainingRequests(ctx, testScope)
	assert.Equal(t, 3, remaining)
}
