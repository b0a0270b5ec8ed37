package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	aiHTTP "ai-task-assistant/internal/assistant/delivery/http"
	aiRepo "ai-task-assistant/internal/assistant/repository/sqlite"
	aiUC "ai-task-assistant/internal/assistant/usecase"
	"ai-task-assistant/internal/middleware"
	taskRepo "ai-task-assistant/internal/task/repository/sqlite"
)

// setupAssistantDomain wires repositories, the use case and the handler, then
// registers /api/v1/ai/* and /internal/v1/ai/*.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api, internal *gin.RouterGroup, mw middleware.Middleware) error {
	repo := aiRepo.New(srv.db, srv.l)
	tasks := taskRepo.New(srv.db, srv.l)

	uc := aiUC.New(srv.l, repo, tasks, srv.backend, srv.governor, srv.assistant)

	h := aiHTTP.New(srv.l, uc)

	aiHTTP.RegisterRoutes(api, h, mw)
	aiHTTP.RegisterInternalRoutes(internal, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered (model=%s, limit=%d/min)", srv.backend.Model(), srv.governor.Limit())
	return nil
}
