package assistant

import (
	"context"

	"ai-task-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Query answers a free-text question about the caller's tasks.
	Query(ctx context.Context, sc model.Scope, input QueryInput) (QueryOutput, error)
	// History lists past interactions, newest first.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
	// ConfirmBreakdown turns stored breakdown suggestions into real tasks.
	ConfirmBreakdown(ctx context.Context, sc model.Scope, input ConfirmInput) (ConfirmOutput, error)

	// Rate limit
	RemainingRequests(ctx context.Context, sc model.Scope) (remaining int, limit int)
	ResetRateLimit(ctx context.Context, userID string)
}
