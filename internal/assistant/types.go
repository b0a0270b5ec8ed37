package assistant

import (
	"time"

	"ai-task-assistant/internal/model"
)

// Strategy is how a query is handled.
type Strategy string

const (
	StrategyGeneral   Strategy = "general"
	StrategyBreakdown Strategy = "breakdown"
	StrategyPriority  Strategy = "priority"
)

// Stage is a step of the query pipeline.
type Stage string

const (
	StageValidating      Stage = "validating"
	StageClassifying     Stage = "classifying"
	StageCompiling       Stage = "compiling"
	StageAwaitingBackend Stage = "awaiting_backend"
	StageInterpreting    Stage = "interpreting"
	StageDone            Stage = "done"
	StageFailed          Stage = "failed"
)

// InteractionStatus is the lifecycle state of an audit record.
type InteractionStatus string

const (
	StatusPending   InteractionStatus = "pending"
	StatusCompleted InteractionStatus = "completed"
	StatusFailed    InteractionStatus = "failed"
	StatusTimeout   InteractionStatus = "timeout"
)

// SuggestionTypeTaskBreakdown is the only suggestion type produced today.
const SuggestionTypeTaskBreakdown = "task_breakdown"

// MaxSuggestions caps every suggestion batch.
const MaxSuggestions = 10

// --- Domain Models ---

// TaskContext is the per-query snapshot of a user's tasks.
// Completed + Pending == Total and Overdue <= Pending.
type TaskContext struct {
	UserID       string
	Total        int
	Completed    int
	Pending      int
	HighPriority int
	Overdue      int
	Tasks        []model.Task
}

// Suggestion is a proposed subtask.
type Suggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rationale   string `json:"rationale"`
}

// Prompt is a compiled system/user pair.
type Prompt struct {
	System string
	User   string
}

// Interaction is the audit record of one query.
type Interaction struct {
	ID                string
	UserID            string
	QueryText         string
	ResponseText      string
	Status            InteractionStatus
	ErrorMessage      string
	TokenCount        *int
	SuggestionsJSON   string
	QueryTimestamp    time.Time
	ResponseTimestamp *time.Time
}

// --- UseCase Inputs ---

type QueryInput struct {
	Query string
}

type HistoryInput struct {
	Limit  int
	Offset int
}

type ConfirmInput struct {
	InteractionID string
}

// --- UseCase Outputs ---

// QueryOutput is the result of one answered query.
type QueryOutput struct {
	InteractionID string
	Query         string
	Response      string
	Timestamp     time.Time
	Suggestions   []Suggestion
	Strategy      Strategy
	TokenCount    int
	Model         string
}

type HistoryOutput struct {
	Interactions []Interaction
	Total        int
	Limit        int
	Offset       int
}

type ConfirmOutput struct {
	CreatedTasks int
	TaskIDs      []string
	Message      string
}
