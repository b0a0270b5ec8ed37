package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"ai-task-assistant/internal/assistant"
	repo "ai-task-assistant/internal/assistant/repository"
	"ai-task-assistant/internal/model"
	taskRepo "ai-task-assistant/internal/task/repository"
)

// ConfirmBreakdown creates one medium-priority task per stored breakdown
// suggestion. Individual failures are skipped; it fails only if none succeed.
func (uc *implUseCase) ConfirmBreakdown(ctx context.Context, sc model.Scope, input assistant.ConfirmInput) (assistant.ConfirmOutput, error) {
	id, err := uuid.Parse(input.InteractionID)
	if err != nil {
		return assistant.ConfirmOutput{}, assistant.ErrInvalidInteractionID
	}

	it, err := uc.repo.GetOneInteraction(ctx, repo.GetOneInteractionOptions{ID: id.String(), UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ConfirmBreakdown GetOneInteraction: %v", err)
		return assistant.ConfirmOutput{}, err
	}
	if it.ID == "" {
		return assistant.ConfirmOutput{}, assistant.ErrInteractionNotFound
	}
	if it.SuggestionsJSON == "" {
		return assistant.ConfirmOutput{}, assistant.ErrNoSuggestions
	}

	var stored []assistant.Suggestion
	if err := json.Unmarshal([]byte(it.SuggestionsJSON), &stored); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ConfirmBreakdown: interaction=%s: %v", it.ID, err)
		return assistant.ConfirmOutput{}, assistant.ErrCorruptSuggestions
	}

	breakdown := make([]assistant.Suggestion, 0, len(stored))
	for _, s := range stored {
		if s.Type == assistant.SuggestionTypeTaskBreakdown {
			breakdown = append(breakdown, s)
		}
	}
	if len(breakdown) == 0 {
		return assistant.ConfirmOutput{}, assistant.ErrNoSuggestions
	}
	if len(breakdown) > MaxConfirmTasks {
		return assistant.ConfirmOutput{}, assistant.ErrTooManySuggestions
	}

	ids := make([]string, 0, len(breakdown))
	for i, s := range breakdown {
		title := s.Title
		if title == "" {
			title = DefaultTaskTitle
		}
		t, err := uc.taskRepo.CreateTask(ctx, taskRepo.CreateTaskOptions{
			UserID:      sc.UserID,
			Title:       title,
			Description: s.Description,
			Priority:    model.PriorityMedium,
			Completed:   false,
		})
		if err != nil {
			uc.l.Warnf(ctx, "assistant.usecase.ConfirmBreakdown: suggestion %d failed: %v", i, err)
			continue
		}
		ids = append(ids, t.ID)
	}

	if len(ids) == 0 {
		return assistant.ConfirmOutput{}, assistant.ErrNoTasksCreated
	}

	uc.l.Infof(ctx, "assistant.usecase.ConfirmBreakdown: user=%s interaction=%s created=%d", sc.UserID, it.ID, len(ids))
	return assistant.ConfirmOutput{
		CreatedTasks: len(ids),
		TaskIDs:      ids,
		Message:      fmt.Sprintf("Successfully created %d tasks from AI suggestions", len(ids)),
	}, nil
}
