package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"ai-task-assistant/internal/assistant"
	repo "ai-task-assistant/internal/assistant/repository"
)

const interactionColumns = `id, user_id, query_text, response_text, status, error_message, token_count, suggestions_json, query_timestamp, response_timestamp`

// CreateInteraction inserts a pending interaction.
func (r *implRepository) CreateInteraction(ctx context.Context, opt repo.CreateInteractionOptions) (assistant.Interaction, error) {
	const query = `
		INSERT INTO ai_interaction (id, user_id, query_text, status, query_timestamp)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.UserID, opt.QueryText, string(assistant.StatusPending), formatTime(opt.QueryTimestamp),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInteraction"), err)
		return assistant.Interaction{}, repo.ErrFailedToInsert
	}

	return assistant.Interaction{
		ID:             opt.ID,
		UserID:         opt.UserID,
		QueryText:      opt.QueryText,
		Status:         assistant.StatusPending,
		QueryTimestamp: opt.QueryTimestamp.UTC(),
	}, nil
}

// UpdateInteraction writes the outcome of an interaction and returns the stored row.
func (r *implRepository) UpdateInteraction(ctx context.Context, opt repo.UpdateInteractionOptions) (assistant.Interaction, error) {
	const query = `
		UPDATE ai_interaction
		SET status = ?, response_text = ?, error_message = ?, token_count = ?,
			suggestions_json = ?, response_timestamp = ?
		WHERE id = ?`

	var tokens sql.NullInt64
	if opt.TokenCount != nil {
		tokens = sql.NullInt64{Int64: int64(*opt.TokenCount), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query,
		string(opt.Status), nullString(opt.ResponseText), nullString(opt.ErrorMessage), tokens,
		nullString(opt.SuggestionsJSON), formatNullTime(opt.ResponseTimestamp), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateInteraction"), err)
		return assistant.Interaction{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return assistant.Interaction{}, nil
	}

	return r.getByID(ctx, opt.ID)
}

// GetOneInteraction retrieves an interaction by ID and owner.
// Returns zero-value Interaction (ID == "") when not found.
func (r *implRepository) GetOneInteraction(ctx context.Context, opt repo.GetOneInteractionOptions) (assistant.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM ai_interaction WHERE id = ? AND user_id = ? LIMIT 1`

	it, err := scanInteraction(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return assistant.Interaction{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneInteraction"), err)
		return assistant.Interaction{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListInteractions returns a page of the user's interactions, newest first, and the total count.
func (r *implRepository) ListInteractions(ctx context.Context, opt repo.ListInteractionsOptions) ([]assistant.Interaction, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ai_interaction WHERE user_id = ?`, opt.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListInteractions"), err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + interactionColumns + ` FROM ai_interaction WHERE user_id = ?
		ORDER BY query_timestamp DESC, rowid DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInteractions"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]assistant.Interaction, 0)
	for rows.Next() {
		it, err := scanInteraction(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListInteractions"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListInteractions"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

func (r *implRepository) getByID(ctx context.Context, id string) (assistant.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM ai_interaction WHERE id = ?`
	it, err := scanInteraction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("getByID"), err)
		return assistant.Interaction{}, repo.ErrFailedToGet
	}
	return it, nil
}
