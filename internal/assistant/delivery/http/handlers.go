package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ai-task-assistant/pkg/response"
)

// Query godoc
// @Summary     Ask the assistant about your tasks
// @Description Answers a free-text question using the caller's task list. Breakdown requests also return subtask suggestions.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Caller identity"
// @Param       body      body   queryReq true "Query"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Invalid query"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     503 {object} response.Resp "AI assistant unavailable"
// @Failure     504 {object} response.Resp "AI request timed out"
// @Router      /api/v1/ai/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Query(ctx, sc, req.toInput())
	h.setRateLimitHeaders(c)
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// History godoc
// @Summary     List past assistant interactions
// @Description Returns the caller's interactions, newest first.
// @Tags        Assistant
// @Produce     json
// @Param       X-User-ID header string true  "Caller identity"
// @Param       limit     query  int    false "Page size 1-50 (default: 10)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Invalid pagination"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ConfirmBreakdown godoc
// @Summary     Create tasks from breakdown suggestions
// @Description Creates one medium-priority task per suggestion stored on the interaction.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller identity"
// @Param       body      body   confirmReq true "Interaction to confirm"
// @Success     200 {object} confirmResp
// @Failure     400 {object} response.Resp "Invalid ID or no suggestions"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Interaction not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/confirm-breakdown [POST]
func (h *handler) ConfirmBreakdown(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ConfirmBreakdown(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ConfirmBreakdown: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newConfirmResp(output))
}

// ResetRateLimit godoc
// @Summary     Reset a user's rate-limit window
// @Tags        Internal
// @Produce     json
// @Param       X-Internal-Key header string true "Internal key"
// @Param       user_id        path   string true "User identity"
// @Success     200 {object} resetResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /internal/v1/ai/rate-limit/{user_id}/reset [POST]
func (h *handler) ResetRateLimit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.ResetRateLimit(ctx, req.UserID)
	response.OK(c, resetResp{UserID: req.UserID})
}

func (h *handler) setRateLimitHeaders(c *gin.Context) {
	sc, err := h.scope(c)
	if err != nil {
		return
	}
	remaining, limit := h.uc.RemainingRequests(c.Request.Context(), sc)
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
}

