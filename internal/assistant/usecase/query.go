package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-task-assistant/internal/assistant"
	repo "ai-task-assistant/internal/assistant/repository"
	"ai-task-assistant/internal/model"
	"ai-task-assistant/pkg/llmprovider"
	"ai-task-assistant/pkg/ratelimit"
)

// auditWriteTimeout bounds each interaction update once the caller may be gone.
const auditWriteTimeout = 5 * time.Second

// answer is the interpreted result of the backend calls of one query.
type answer struct {
	Text        string
	TokenCount  int
	Model       string
	Suggestions []assistant.Suggestion
}

// Query runs one question through validation, classification, prompt
// compilation, the backend and interpretation. The interaction record is
// updated before any error is returned.
func (uc *implUseCase) Query(ctx context.Context, sc model.Scope, input assistant.QueryInput) (assistant.QueryOutput, error) {
	if err := uc.governor.Check(sc.UserID); err != nil {
		var exceeded *ratelimit.ExceededError
		if errors.As(err, &exceeded) {
			uc.l.Warnf(ctx, "assistant.usecase.Query: rate limit exceeded user=%s limit=%d", sc.UserID, exceeded.Limit)
			return assistant.QueryOutput{}, &assistant.RateLimitError{Limit: exceeded.Limit}
		}
		return assistant.QueryOutput{}, err
	}

	it, err := uc.repo.CreateInteraction(ctx, repo.CreateInteractionOptions{
		ID:             uc.newID(),
		UserID:         sc.UserID,
		QueryText:      input.Query,
		QueryTimestamp: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Query CreateInteraction: %v", err)
		return assistant.QueryOutput{}, err
	}

	tc, err := uc.buildTaskContext(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Query buildTaskContext: %v", err)
		err = fmt.Errorf("%w: %v", assistant.ErrTaskSourceUnavailable, err)
		uc.failInteraction(ctx, it.ID, assistant.StatusFailed, err)
		return assistant.QueryOutput{}, err
	}

	uc.logStage(ctx, it.ID, assistant.StageValidating)
	query, err := validateQuery(input.Query)
	if err != nil {
		uc.logStage(ctx, it.ID, assistant.StageFailed)
		uc.failInteraction(ctx, it.ID, assistant.StatusFailed, err)
		return assistant.QueryOutput{}, err
	}

	uc.logStage(ctx, it.ID, assistant.StageClassifying)
	strategy := classifyQuery(query)

	uc.logStage(ctx, it.ID, assistant.StageCompiling)
	rendered := renderTaskContext(tc)

	var ans answer
	if strategy == assistant.StrategyBreakdown {
		ans, err = uc.runBreakdown(ctx, it.ID, compileBreakdown(rendered, query, tc))
	} else {
		ans, err = uc.runSingle(ctx, it.ID, strategy, compilePrompt(strategy, rendered, query, tc))
	}
	if err != nil {
		uc.logStage(ctx, it.ID, assistant.StageFailed)
		status := assistant.StatusFailed
		if errors.Is(err, assistant.ErrBackendTimeout) {
			status = assistant.StatusTimeout
		}
		uc.l.Errorf(ctx, "assistant.usecase.Query: interaction=%s strategy=%s: %v", it.ID, strategy, err)
		uc.failInteraction(ctx, it.ID, status, err)
		return assistant.QueryOutput{}, err
	}

	answeredAt := uc.now()
	var suggestionsJSON string
	if len(ans.Suggestions) > 0 {
		b, err := json.Marshal(ans.Suggestions)
		if err != nil {
			uc.l.Errorf(ctx, "assistant.usecase.Query marshal suggestions: %v", err)
			return assistant.QueryOutput{}, err
		}
		suggestionsJSON = string(b)
	}

	tokens := ans.TokenCount
	auditCtx, cancel := auditContext(ctx)
	defer cancel()
	if _, err := uc.repo.UpdateInteraction(auditCtx, repo.UpdateInteractionOptions{
		ID:                it.ID,
		Status:            assistant.StatusCompleted,
		ResponseText:      ans.Text,
		TokenCount:        &tokens,
		SuggestionsJSON:   suggestionsJSON,
		ResponseTimestamp: &answeredAt,
	}); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Query UpdateInteraction: %v", err)
		return assistant.QueryOutput{}, err
	}
	uc.logStage(ctx, it.ID, assistant.StageDone)

	return assistant.QueryOutput{
		InteractionID: it.ID,
		Query:         input.Query,
		Response:      ans.Text,
		Timestamp:     answeredAt,
		Suggestions:   ans.Suggestions,
		Strategy:      strategy,
		TokenCount:    ans.TokenCount,
		Model:         ans.Model,
	}, nil
}

// runSingle handles the general and priority strategies with one backend call.
func (uc *implUseCase) runSingle(ctx context.Context, id string, strategy assistant.Strategy, p assistant.Prompt) (answer, error) {
	uc.logStage(ctx, id, assistant.StageAwaitingBackend)
	resp, err := uc.complete(ctx, p)
	if err != nil {
		return answer{}, err
	}

	uc.logStage(ctx, id, assistant.StageInterpreting)
	ans := answer{
		Text:        resp.Text(),
		TokenCount:  resp.TokenCount(),
		Model:       uc.modelOf(resp),
		Suggestions: []assistant.Suggestion{},
	}
	if strategy == assistant.StrategyPriority {
		ans.TokenCount = estimateTokens(ans.Text)
	}
	return ans, nil
}

// runBreakdown issues the suggestion call, then the conversational call.
// Text and token count come from the second call, suggestions from the first.
func (uc *implUseCase) runBreakdown(ctx context.Context, id string, plan breakdownPlan) (answer, error) {
	uc.logStage(ctx, id, assistant.StageAwaitingBackend)
	suggestResp, err := uc.complete(ctx, plan.Suggest)
	if err != nil {
		return answer{}, err
	}
	converseResp, err := uc.complete(ctx, plan.Converse)
	if err != nil {
		return answer{}, err
	}

	uc.logStage(ctx, id, assistant.StageInterpreting)
	parsed := parseSuggestions(extractJSON(suggestResp.Text()))
	if parsed.Outcome == SuggestionsMalformed {
		uc.l.Warnf(ctx, "assistant.usecase.runBreakdown: interaction=%s malformed suggestions: %v", id, parsed.Err)
	}
	if parsed.Skipped > 0 {
		uc.l.Warnf(ctx, "assistant.usecase.runBreakdown: interaction=%s skipped %d malformed suggestions", id, parsed.Skipped)
	}

	return answer{
		Text:        converseResp.Text(),
		TokenCount:  converseResp.TokenCount(),
		Model:       uc.modelOf(converseResp),
		Suggestions: parsed.Suggestions,
	}, nil
}

// complete sends one prompt pair and maps backend failures to domain errors.
func (uc *implUseCase) complete(ctx context.Context, p assistant.Prompt) (*llmprovider.Response, error) {
	req := llmprovider.NewTextRequest(p.System, p.User, uc.maxTokens)
	req.Temperature = uc.temperature

	resp, err := uc.backend.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(err, llmprovider.ErrProviderTimeout) {
			return nil, fmt.Errorf("%w: %v", assistant.ErrBackendTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", assistant.ErrBackendUnavailable, err)
	}
	return resp, nil
}

func (uc *implUseCase) modelOf(resp *llmprovider.Response) string {
	if resp.ModelName != "" {
		return resp.ModelName
	}
	return uc.backend.Model()
}

func (uc *implUseCase) failInteraction(ctx context.Context, id string, status assistant.InteractionStatus, cause error) {
	auditCtx, cancel := auditContext(ctx)
	defer cancel()
	if _, err := uc.repo.UpdateInteraction(auditCtx, repo.UpdateInteractionOptions{
		ID:           id,
		Status:       status,
		ErrorMessage: cause.Error(),
	}); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.failInteraction: interaction=%s: %v", id, err)
	}
}

func (uc *implUseCase) logStage(ctx context.Context, id string, stage assistant.Stage) {
	uc.l.Debugf(ctx, "assistant.usecase.Query: interaction=%s stage=%s", id, stage)
}

// auditContext detaches interaction writes from caller cancellation. The record
// was created before the backend call and must reach a terminal status.
func auditContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
}
