package sqlite

import (
	"database/sql"
	"time"

	"ai-task-assistant/internal/assistant"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInteraction(s rowScanner) (assistant.Interaction, error) {
	var (
		it          assistant.Interaction
		response    sql.NullString
		status      string
		errMsg      sql.NullString
		tokens      sql.NullInt64
		suggestions sql.NullString
		queryTS     string
		responseTS  sql.NullString
	)
	if err := s.Scan(&it.ID, &it.UserID, &it.QueryText, &response, &status, &errMsg, &tokens, &suggestions, &queryTS, &responseTS); err != nil {
		return assistant.Interaction{}, err
	}

	it.ResponseText = response.String
	it.Status = assistant.InteractionStatus(status)
	it.ErrorMessage = errMsg.String
	it.SuggestionsJSON = suggestions.String
	if tokens.Valid {
		n := int(tokens.Int64)
		it.TokenCount = &n
	}

	var err error
	if it.QueryTimestamp, err = time.Parse(timeLayout, queryTS); err != nil {
		return assistant.Interaction{}, err
	}
	if responseTS.Valid && responseTS.String != "" {
		ts, err := time.Parse(timeLayout, responseTS.String)
		if err != nil {
			return assistant.Interaction{}, err
		}
		it.ResponseTimestamp = &ts
	}
	return it, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
