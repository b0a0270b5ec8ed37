package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-assistant/internal/middleware"
	"ai-task-assistant/internal/model"
)

// processQueryReq binds the query body and returns the caller scope.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, model.Scope, error) {
	sc, err := h.scope(c)
	if err != nil {
		return queryReq{}, sc, err
	}
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processHistoryReq binds the pagination query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, model.Scope, error) {
	sc, err := h.scope(c)
	if err != nil {
		return historyReq{}, sc, err
	}
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processConfirmReq binds the confirm-breakdown body.
func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, model.Scope, error) {
	sc, err := h.scope(c)
	if err != nil {
		return confirmReq{}, sc, err
	}
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processResetReq binds the user_id URI param.
func (h *handler) processResetReq(c *gin.Context) (resetReq, error) {
	var req resetReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, errUnauthorized
	}
	return sc, nil
}
