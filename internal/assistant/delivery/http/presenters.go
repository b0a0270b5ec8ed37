package http

import (
	"errors"
	"strings"
	"time"

	"ai-task-assistant/internal/assistant"
)

const (
	timestampLayout     = "2006-01-02T15:04:05.000000"
	defaultHistoryLimit = 10
)

var errUserIDRequired = errors.New("user_id is required")

// --- Request DTOs ---

type queryReq struct {
	Query string `json:"query"`
}

func (r queryReq) validate() error { return nil }

func (r queryReq) toInput() assistant.QueryInput {
	return assistant.QueryInput{Query: r.Query}
}

// ---

type historyReq struct {
	Limit  *int `form:"limit"`
	Offset *int `form:"offset"`
}

func (r historyReq) validate() error { return nil }

func (r historyReq) toInput() assistant.HistoryInput {
	in := assistant.HistoryInput{Limit: defaultHistoryLimit}
	if r.Limit != nil {
		in.Limit = *r.Limit
	}
	if r.Offset != nil {
		in.Offset = *r.Offset
	}
	return in
}

// ---

type confirmReq struct {
	InteractionID string `json:"interaction_id"`
}

func (r confirmReq) validate() error { return nil }

func (r confirmReq) toInput() assistant.ConfirmInput {
	return assistant.ConfirmInput{InteractionID: r.InteractionID}
}

// ---

type resetReq struct {
	UserID string `uri:"user_id"`
}

func (r resetReq) validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errUserIDRequired
	}
	return nil
}

// --- Response DTOs ---

type suggestionResp struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rationale   string `json:"rationale"`
}

type queryResp struct {
	InteractionID string           `json:"interaction_id"`
	Query         string           `json:"query"`
	Response      string           `json:"response"`
	Timestamp     string           `json:"timestamp"`
	Suggestions   []suggestionResp `json:"suggestions"`
	Strategy      string           `json:"strategy"`
	TokenCount    int              `json:"token_count"`
	Model         string           `json:"model"`
}

type interactionResp struct {
	ID        string `json:"id"`
	Query     string `json:"query"`
	Response  string `json:"response,omitempty"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

type historyResp struct {
	Interactions []interactionResp `json:"interactions"`
	Total        int               `json:"total"`
}

type confirmResp struct {
	CreatedTasks int      `json:"created_tasks"`
	TaskIDs      []string `json:"task_ids"`
	Message      string   `json:"message"`
}

type resetResp struct {
	UserID string `json:"user_id"`
}

// --- Presenters ---

func (h *handler) newQueryResp(o assistant.QueryOutput) queryResp {
	suggestions := make([]suggestionResp, 0, len(o.Suggestions))
	for _, s := range o.Suggestions {
		suggestions = append(suggestions, suggestionResp(s))
	}
	return queryResp{
		InteractionID: o.InteractionID,
		Query:         o.Query,
		Response:      o.Response,
		Timestamp:     formatTimestamp(o.Timestamp),
		Suggestions:   suggestions,
		Strategy:      string(o.Strategy),
		TokenCount:    o.TokenCount,
		Model:         o.Model,
	}
}

func (h *handler) newHistoryResp(o assistant.HistoryOutput) historyResp {
	items := make([]interactionResp, 0, len(o.Interactions))
	for _, it := range o.Interactions {
		items = append(items, interactionResp{
			ID:        it.ID,
			Query:     it.QueryText,
			Response:  it.ResponseText,
			Timestamp: formatTimestamp(it.QueryTimestamp),
			Status:    string(it.Status),
		})
	}
	return historyResp{Interactions: items, Total: o.Total}
}

func (h *handler) newConfirmResp(o assistant.ConfirmOutput) confirmResp {
	ids := o.TaskIDs
	if ids == nil {
		ids = []string{}
	}
	return confirmResp{
		CreatedTasks: o.CreatedTasks,
		TaskIDs:      ids,
		Message:      o.Message,
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
