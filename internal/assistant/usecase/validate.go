package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"ai-task-assistant/internal/assistant"
)

// disallowedRunes matches everything except letters, digits, underscore,
// whitespace and ? ! . , - : ; ( ).
var disallowedRunes = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\p{Z}\x{1c}-\x{1f}\x{85}?!.,\-:;()]`)

// validateQuery trims raw, checks its length and strips disallowed characters.
func validateQuery(raw string) (string, error) {
	q := strings.TrimSpace(raw)

	n := utf8.RuneCountInString(q)
	if n == 0 {
		return "", assistant.ErrEmptyQuery
	}
	if n > MaxQueryLength {
		return "", assistant.ErrQueryTooLong
	}

	return sanitizeQuery(q), nil
}

// sanitizeQuery deletes disallowed characters. It is idempotent.
func sanitizeQuery(q string) string {
	return disallowedRunes.ReplaceAllString(q, "")
}
