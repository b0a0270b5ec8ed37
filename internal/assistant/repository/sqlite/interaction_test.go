package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-assistant/internal/assistant"
	repo "ai-task-assistant/internal/assistant/repository"
	"ai-task-assistant/pkg/log"
	pkgSqlite "ai-task-assistant/pkg/sqlite"
)

func newTestRepository(t *testing.T) repo.Repository {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), pkgSqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, log.NewNop())
}

func TestInteractionLifecycle(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	asked := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	created, err := r.CreateInteraction(ctx, repo.CreateInteractionOptions{
		ID:             "11111111-1111-1111-1111-111111111111",
		UserID:         "u1",
		QueryText:      "What should I do first?",
		QueryTimestamp: asked,
	})
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusPending, created.Status)

	got, err := r.GetOneInteraction(ctx, repo.GetOneInteractionOptions{ID: created.ID, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusPending, got.Status)
	assert.Nil(t, got.TokenCount)
	assert.Nil(t, got.ResponseTimestamp)
	assert.True(t, asked.Equal(got.QueryTimestamp))

	answered := asked.Add(2 * time.Second)
	tokens := 42
	updated, err := r.UpdateInteraction(ctx, repo.UpdateInteractionOptions{
		ID:                created.ID,
		Status:            assistant.StatusCompleted,
		ResponseText:      "Start with the report.",
		TokenCount:        &tokens,
		SuggestionsJSON:   `[{"type":"task_breakdown","title":"Outline"}]`,
		ResponseTimestamp: &answered,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, assistant.StatusCompleted, updated.Status)
	assert.Equal(t, "Start with the report.", updated.ResponseText)
	require.NotNil(t, updated.TokenCount)
	assert.Equal(t, 42, *updated.TokenCount)
	assert.Contains(t, updated.SuggestionsJSON, "Outline")
	require.NotNil(t, updated.ResponseTimestamp)
	assert.True(t, answered.Equal(*updated.ResponseTimestamp))
}

func TestGetOneInteraction_OwnerScoped(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	_, err := r.CreateInteraction(ctx, repo.CreateInteractionOptions{
		ID: "a", UserID: "owner", QueryText: "q", QueryTimestamp: time.Now(),
	})
	require.NoError(t, err)

	got, err := r.GetOneInteraction(ctx, repo.GetOneInteractionOptions{ID: "a", UserID: "intruder"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	got, err = r.GetOneInteraction(ctx, repo.GetOneInteractionOptions{ID: "missing", UserID: "owner"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestUpdateInteraction_Missing(t *testing.T) {
	r := newTestRepository(t)

	got, err := r.UpdateInteraction(context.Background(), repo.UpdateInteractionOptions{
		ID: "missing", Status: assistant.StatusFailed, ErrorMessage: "boom",
	})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestListInteractions_NewestFirstWithTotal(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := r.CreateInteraction(ctx, repo.CreateInteractionOptions{
			ID:             fmt.Sprintf("id-%d", i),
			UserID:         "u1",
			QueryText:      fmt.Sprintf("query %d", i),
			QueryTimestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := r.CreateInteraction(ctx, repo.CreateInteractionOptions{
		ID: "other", UserID: "u2", QueryText: "x", QueryTimestamp: base,
	})
	require.NoError(t, err)

	items, total, err := r.ListInteractions(ctx, repo.ListInteractionsOptions{UserID: "u1", Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, "id-3", items[0].ID)
	assert.Equal(t, "id-2", items[1].ID)

	items, total, err = r.ListInteractions(ctx, repo.ListInteractionsOptions{UserID: "nobody", Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
