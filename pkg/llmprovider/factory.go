package llmprovider

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderOllama    = "ollama"

	DefaultAnthropicModel = "claude-3-sonnet-20240229"
	DefaultOllamaURL      = "http://localhost:11434"
	DefaultMaxTokens      = 1000
)

// ProviderConfig selects and configures the single backend provider
type ProviderConfig struct {
	Name      string
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// NewProvider creates the provider named in cfg
func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	if cfg.Name == "" {
		cfg.Name = ProviderAnthropic
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Model == "" {
		if cfg.Name != ProviderAnthropic {
			return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
		}
		cfg.Model = DefaultAnthropicModel
	}

	chat, err := newChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewChatModelAdapter(cfg.Name, cfg.Model, chat), nil
}

func newChatModel(ctx context.Context, cfg ProviderConfig) (model.BaseChatModel, error) {
	switch cfg.Name {
	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		claudeCfg := &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		}
		if cfg.BaseURL != "" {
			baseURL := cfg.BaseURL
			claudeCfg.BaseURL = &baseURL
		}
		chat, err := claude.NewChatModel(ctx, claudeCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return chat, nil

	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		maxTokens := cfg.MaxTokens
		chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			BaseURL:   cfg.BaseURL,
			MaxTokens: &maxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return chat, nil

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		chat, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return chat, nil

	default:
		return nil, fmt.Errorf("%w: %s (supported: anthropic, openai, ollama)", ErrUnsupportedProvider, cfg.Name)
	}
}
