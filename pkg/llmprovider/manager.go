package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/time/rate"

	"ai-task-assistant/pkg/log"
)

const DefaultTimeout = 30 * time.Second

// Manager fronts the single configured provider. It bounds every call with a
// timeout, optionally throttles calls process-wide, and classifies failures
// into ErrProviderTimeout or ErrProviderUnavailable. It never retries.
type Manager struct {
	provider Provider
	config   *Config
	throttle *rate.Limiter
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	Timeout time.Duration
	// RequestsPerSecond caps calls to the provider across all users. 0 disables the cap.
	RequestsPerSecond float64
	Burst             int
}

// NewManager creates a new Provider Manager for provider
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	m := &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}

	if config.RequestsPerSecond > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		m.throttle = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst)
	}

	return m
}

// Model returns the model of the configured provider
func (m *Manager) Model() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Model()
}

// Name returns the name of the configured provider
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

// GenerateContent runs one provider call to completion or timeout.
// Cancellation of ctx is deliberately not propagated to an in-flight call;
// only the configured timeout abandons it.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.config.Timeout)
	defer cancel()

	if m.throttle != nil {
		if err := m.throttle.Wait(callCtx); err != nil {
			err = m.classify(callCtx, err)
			m.logFailure(ctx, err)
			return nil, err
		}
	}

	type result struct {
		resp *Response
		err  error
	}
	done := make(chan result, 1)

	start := time.Now()
	go func() {
		resp, err := m.provider.GenerateContent(callCtx, req)
		done <- result{resp: resp, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-callCtx.Done():
		res = result{err: callCtx.Err()}
	}

	if res.err == nil && (res.resp == nil || len(res.resp.Content.Parts) == 0) {
		res.err = ErrEmptyResponse
	}
	if res.err != nil {
		err := m.classify(callCtx, res.err)
		m.logFailure(ctx, err)
		return nil, err
	}

	if res.resp.ModelName == "" {
		res.resp.ModelName = m.provider.Model()
	}
	if res.resp.ProviderName == "" {
		res.resp.ProviderName = m.provider.Name()
	}
	if res.resp.Usage == nil {
		res.resp.Usage = &Usage{}
	}

	m.logSuccess(ctx, res.resp, time.Since(start))
	return res.resp, nil
}

// classify wraps err as a timeout when the deadline fired or the transport
// reported a timeout, and as unavailable otherwise.
func (m *Manager) classify(callCtx context.Context, err error) error {
	kind := ErrProviderUnavailable
	if isTimeout(err) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		kind = ErrProviderTimeout
	}
	return &ProviderError{
		Provider: m.provider.Name(),
		Err:      fmt.Errorf("%w: %w", kind, err),
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response, took time.Duration) {
	m.logger.Info(ctx, "LLM generation successful",
		" provider=", m.provider.Name(),
		" model=", resp.ModelName,
		" input_tokens=", resp.Usage.InputTokens,
		" output_tokens=", resp.Usage.OutputTokens,
		" took=", took,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		" provider=", m.provider.Name(),
		" model=", m.provider.Model(),
		" error=", err.Error(),
	)
}
