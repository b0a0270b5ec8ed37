package usecase

import (
	"strings"

	"ai-task-assistant/internal/assistant"
)

// classifyQuery picks a strategy by substring match. Breakdown wins over priority.
func classifyQuery(q string) assistant.Strategy {
	lower := strings.ToLower(q)
	switch {
	case containsAny(lower, BreakdownKeywords):
		return assistant.StrategyBreakdown
	case containsAny(lower, PriorityKeywords):
		return assistant.StrategyPriority
	default:
		return assistant.StrategyGeneral
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
