package usecase

import (
	"context"

	"ai-task-assistant/internal/model"
)

// RemainingRequests reports the caller's free slots in the current window and the limit.
func (uc *implUseCase) RemainingRequests(ctx context.Context, sc model.Scope) (int, int) {
	return uc.governor.Remaining(sc.UserID), uc.governor.Limit()
}

// ResetRateLimit clears the window of userID.
func (uc *implUseCase) ResetRateLimit(ctx context.Context, userID string) {
	uc.governor.Reset(userID)
	uc.l.Infof(ctx, "assistant.usecase.ResetRateLimit: user=%s", userID)
}
