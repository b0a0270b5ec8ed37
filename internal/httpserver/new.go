package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"ai-task-assistant/internal/assistant/usecase"
	"ai-task-assistant/pkg/log"
	"ai-task-assistant/pkg/ratelimit"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Assistant domain
	backend   usecase.Backend
	governor  *ratelimit.Governor
	assistant usecase.Config

	// Auth
	identityHeader string
	internalKey    string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	Backend   usecase.Backend
	Governor  *ratelimit.Governor
	Assistant usecase.Config

	IdentityHeader string
	InternalKey    string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		backend:        cfg.Backend,
		governor:       cfg.Governor,
		assistant:      cfg.Assistant,
		identityHeader: cfg.IdentityHeader,
		internalKey:    cfg.InternalKey,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.backend == nil {
		return errors.New("backend is required")
	}
	if srv.governor == nil {
		return errors.New("governor is required")
	}
	return nil
}
