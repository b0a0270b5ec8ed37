package repository

import (
	"time"

	"ai-task-assistant/internal/assistant"
)

// CreateInteractionOptions holds parameters for inserting a pending interaction.
type CreateInteractionOptions struct {
	ID             string
	UserID         string
	QueryText      string
	QueryTimestamp time.Time
}

// UpdateInteractionOptions moves an interaction to a terminal status.
// Empty strings and nil pointers are stored as NULL.
type UpdateInteractionOptions struct {
	ID                string
	Status            assistant.InteractionStatus
	ResponseText      string
	ErrorMessage      string
	TokenCount        *int
	SuggestionsJSON   string
	ResponseTimestamp *time.Time
}

// GetOneInteractionOptions selects one interaction owned by UserID.
type GetOneInteractionOptions struct {
	ID     string
	UserID string
}

// ListInteractionsOptions holds filter and pagination parameters.
type ListInteractionsOptions struct {
	UserID string
	Limit  int
	Offset int
}
