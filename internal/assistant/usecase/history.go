package usecase

import (
	"context"

	"ai-task-assistant/internal/assistant"
	repo "ai-task-assistant/internal/assistant/repository"
	"ai-task-assistant/internal/model"
)

// History returns a page of the user's interactions, newest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input assistant.HistoryInput) (assistant.HistoryOutput, error) {
	if input.Limit < 1 || input.Limit > MaxHistoryLimit || input.Offset < 0 {
		return assistant.HistoryOutput{}, assistant.ErrInvalidPagination
	}

	items, total, err := uc.repo.ListInteractions(ctx, repo.ListInteractionsOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.History ListInteractions: %v", err)
		return assistant.HistoryOutput{}, err
	}

	return assistant.HistoryOutput{
		Interactions: items,
		Total:        total,
		Limit:        input.Limit,
		Offset:       input.Offset,
	}, nil
}
