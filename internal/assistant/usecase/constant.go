package usecase

const (
	// MaxQueryLength is counted in characters after trimming.
	MaxQueryLength = 1000

	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50

	// MaxConfirmTasks caps tasks created from one confirmation.
	MaxConfirmTasks = 10

	DefaultTaskTitle = "Untitled Task"

	// dueDateLayout renders due dates in prompts (UTC, no zone suffix).
	dueDateLayout = "2006-01-02T15:04:05"

	// priorityTokenFactor approximates tokens per word for the priority strategy.
	priorityTokenFactor = 2
)

// BreakdownKeywords route a query to the breakdown strategy. Checked first.
var BreakdownKeywords = []string{
	"break down",
	"breakdown",
	"break up",
	"split",
	"divide",
	"subtask",
	"sub-task",
	"sub task",
	"how should i",
	"how can i break",
	"steps to",
	"break into",
}

// PriorityKeywords route a query to the priority strategy.
var PriorityKeywords = []string{
	"priority",
	"priorities",
	"focus",
	"should i work on",
	"what should i do",
	"most important",
	"urgent",
	"critical",
	"what next",
	"what's next",
	"where to start",
	"start with",
}

const generalSystemPrompt = `You are a helpful task management assistant.
Your role is to help users understand and manage their tasks.

IMPORTANT RULES:
1. Only reference tasks that are provided in the context
2. Never invent or hallucinate tasks that don't exist
3. Provide clear, simple explanations without technical jargon
4. If asked about tasks that don't exist, politely say you don't see them
5. Be concise but helpful

When suggesting task breakdowns, provide 3-5 specific, actionable subtasks.`

const generalUserPrompt = `Task Context:
%s

User Question: %s

Please answer based ONLY on the tasks shown above. Do not invent tasks.`

const breakdownSystemPrompt = `You are a task breakdown specialist.
Your role is to help users break down complex tasks into manageable subtasks.

IMPORTANT RULES:
1. Suggest 3-5 specific, actionable subtasks
2. Each subtask should be clear and achievable
3. Provide a brief rationale for each subtask
4. Return ONLY valid JSON in this exact format:
{
  "suggestions": [
    {
      "type": "task_breakdown",
      "title": "Subtask title",
      "description": "What needs to be done",
      "rationale": "Why this subtask is important"
    }
  ]
}

Do not include any text before or after the JSON.`

const breakdownUserPrompt = `Task Context:
%s

User Request: %s

Please suggest 3-5 subtasks to break down this work. Return ONLY the JSON format specified.`

const prioritySystemPrompt = `You are a task priority advisor.
Your role is to help users understand their task priorities and make informed decisions.

IMPORTANT RULES:
1. Explain priorities with clear reasoning and tradeoffs
2. Present options and considerations - do NOT dictate what the user must do
3. Use simple, non-technical language
4. Consider urgency (due dates), importance (priority level), and workload
5. Acknowledge that the user knows their context best
6. Be advisory, not prescriptive - use phrases like "you might consider", "one approach could be"
7. Explain the reasoning behind different priority approaches

Avoid:
- Technical jargon
- Absolute statements like "you must" or "you should definitely"
- Making decisions for the user`

// priorityUserPrompt args: high, overdue, pending, completed, context, query.
const priorityUserPrompt = `
Priority Analysis:
- High priority tasks: %d
- Overdue tasks: %d
- Pending tasks: %d
- Completed tasks: %d

%s

User Question: %s

Please explain the priority considerations and tradeoffs to help the user decide what to focus on.`
