package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-task-assistant/internal/assistant/repository"
	taskRepo "ai-task-assistant/internal/task/repository"
	"ai-task-assistant/pkg/llmprovider"
	pkgLog "ai-task-assistant/pkg/log"
	"ai-task-assistant/pkg/ratelimit"
)

// Backend is the language-model collaborator. *llmprovider.Manager satisfies it.
type Backend interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Model() string
}

// Config tunes the requests sent to the backend.
type Config struct {
	MaxTokens   int
	Temperature float64
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	taskRepo    taskRepo.Repository
	backend     Backend
	governor    *ratelimit.Governor
	maxTokens   int
	temperature float64
	now         func() time.Time
	newID       func() string
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	taskRepo taskRepo.Repository,
	backend Backend,
	governor *ratelimit.Governor,
	cfg Config,
) *implUseCase {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = llmprovider.DefaultMaxTokens
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		taskRepo:    taskRepo,
		backend:     backend,
		governor:    governor,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}
