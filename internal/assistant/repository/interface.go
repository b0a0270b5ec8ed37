package repository

import (
	"context"

	"ai-task-assistant/internal/assistant"
)

// Repository is the composed interface for the assistant data store.
type Repository interface {
	InteractionRepository
}

// InteractionRepository persists the audit trail of assistant queries.
type InteractionRepository interface {
	CreateInteraction(ctx context.Context, opt CreateInteractionOptions) (assistant.Interaction, error)
	// UpdateInteraction returns a zero Interaction (ID == "") when nothing matched.
	UpdateInteraction(ctx context.Context, opt UpdateInteractionOptions) (assistant.Interaction, error)
	// GetOneInteraction returns a zero Interaction (ID == "") when not found.
	GetOneInteraction(ctx context.Context, opt GetOneInteractionOptions) (assistant.Interaction, error)
	ListInteractions(ctx context.Context, opt ListInteractionsOptions) ([]assistant.Interaction, int, error)
}
