package usecase

import (
	"encoding/json"
	"errors"
	"strings"

	"ai-task-assistant/internal/assistant"
)

const fence = "```"

// SuggestionOutcome classifies the result of parsing a breakdown reply.
type SuggestionOutcome int

const (
	SuggestionsParsed SuggestionOutcome = iota
	SuggestionsEmpty
	SuggestionsMalformed
)

func (o SuggestionOutcome) String() string {
	switch o {
	case SuggestionsParsed:
		return "parsed"
	case SuggestionsEmpty:
		return "empty"
	default:
		return "malformed"
	}
}

var errNoJSON = errors.New("reply contains no JSON")

// suggestionParse is the typed result of the extract-then-parse pipeline.
// Err is set only when Outcome is SuggestionsMalformed. Skipped counts entries
// among the first MaxSuggestions that were not JSON objects.
type suggestionParse struct {
	Suggestions []assistant.Suggestion
	Outcome     SuggestionOutcome
	Err         error
	Skipped     int
}

// extractJSON unwraps a ```json block, else the first fenced block, else
// returns the trimmed reply.
func extractJSON(reply string) string {
	text := strings.TrimSpace(reply)

	if _, after, ok := strings.Cut(text, fence+"json"); ok {
		inner, _, _ := strings.Cut(after, fence)
		return strings.TrimSpace(inner)
	}
	if _, after, ok := strings.Cut(text, fence); ok {
		inner, _, _ := strings.Cut(after, fence)
		return strings.TrimSpace(inner)
	}
	return text
}

// parseSuggestions decodes {"suggestions": [...]}. It never fails: bad input
// yields SuggestionsMalformed with an empty list. Only the first
// assistant.MaxSuggestions entries are considered, and each one is decoded on
// its own so a single odd entry cannot discard the rest.
func parseSuggestions(raw string) suggestionParse {
	if raw == "" {
		return suggestionParse{Suggestions: []assistant.Suggestion{}, Outcome: SuggestionsMalformed, Err: errNoJSON}
	}

	var payload struct {
		Suggestions []json.RawMessage `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return suggestionParse{Suggestions: []assistant.Suggestion{}, Outcome: SuggestionsMalformed, Err: err}
	}

	entries := payload.Suggestions
	if len(entries) > assistant.MaxSuggestions {
		entries = entries[:assistant.MaxSuggestions]
	}

	res := suggestionParse{Suggestions: make([]assistant.Suggestion, 0, len(entries))}
	for _, entry := range entries {
		s, ok := decodeSuggestion(entry)
		if !ok {
			res.Skipped++
			continue
		}
		if s.Type == "" {
			s.Type = assistant.SuggestionTypeTaskBreakdown
		}
		if s.Type != assistant.SuggestionTypeTaskBreakdown {
			continue
		}
		res.Suggestions = append(res.Suggestions, s)
	}

	res.Outcome = SuggestionsParsed
	if len(res.Suggestions) == 0 {
		res.Outcome = SuggestionsEmpty
	}
	return res
}

// decodeSuggestion reads one entry leniently: scalar fields of any JSON type
// become strings, nested values become empty. ok is false for non-objects.
func decodeSuggestion(entry json.RawMessage) (assistant.Suggestion, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
		return assistant.Suggestion{}, false
	}
	return assistant.Suggestion{
		Type:        strings.TrimSpace(scalarString(fields["type"])),
		Title:       scalarString(fields["title"]),
		Description: scalarString(fields["description"]),
		Rationale:   scalarString(fields["rationale"]),
	}, true
}

func scalarString(v json.RawMessage) string {
	text := strings.TrimSpace(string(v))
	if text == "" || text == "null" {
		return ""
	}
	switch text[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	default:
		return text
	}
}

// estimateTokens is the word-count approximation used when no usage is counted.
func estimateTokens(text string) int {
	return len(strings.Fields(text)) * priorityTokenFactor
}
