package usecase

import (
	"fmt"

	"ai-task-assistant/internal/assistant"
)

// breakdownPlan is the two-step breakdown pipeline. Suggest yields the
// suggestions, Converse yields the text and token count.
type breakdownPlan struct {
	Suggest  assistant.Prompt
	Converse assistant.Prompt
}

// compilePrompt assembles the system/user pair of one strategy.
func compilePrompt(strategy assistant.Strategy, rendered, query string, tc assistant.TaskContext) assistant.Prompt {
	switch strategy {
	case assistant.StrategyBreakdown:
		return assistant.Prompt{
			System: breakdownSystemPrompt,
			User:   fmt.Sprintf(breakdownUserPrompt, rendered, query),
		}
	case assistant.StrategyPriority:
		return assistant.Prompt{
			System: prioritySystemPrompt,
			User: fmt.Sprintf(priorityUserPrompt,
				tc.HighPriority, tc.Overdue, tc.Pending, tc.Completed, rendered, query),
		}
	default:
		return assistant.Prompt{
			System: generalSystemPrompt,
			User:   fmt.Sprintf(generalUserPrompt, rendered, query),
		}
	}
}

func compileBreakdown(rendered, query string, tc assistant.TaskContext) breakdownPlan {
	return breakdownPlan{
		Suggest:  compilePrompt(assistant.StrategyBreakdown, rendered, query, tc),
		Converse: compilePrompt(assistant.StrategyGeneral, rendered, query, tc),
	}
}
