package llmprovider

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatModelAdapter adapts an eino chat model to the Provider interface
type ChatModelAdapter struct {
	name  string
	model string
	chat  model.BaseChatModel
}

// NewChatModelAdapter creates a new adapter for chat
func NewChatModelAdapter(name, modelName string, chat model.BaseChatModel) *ChatModelAdapter {
	return &ChatModelAdapter{
		name:  name,
		model: modelName,
		chat:  chat,
	}
}

// GenerateContent implements Provider interface
func (a *ChatModelAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var opts []model.Option
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, model.WithTemperature(float32(req.Temperature)))
	}

	out, err := a.chat.Generate(ctx, toSchemaMessages(req), opts...)
	if err != nil {
		return nil, err
	}

	return fromSchemaMessage(out, a.name, a.model), nil
}

// Name returns provider name
func (a *ChatModelAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *ChatModelAdapter) Model() string {
	return a.model
}

func toSchemaMessages(req *Request) []*schema.Message {
	msgs := make([]*schema.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, schema.SystemMessage(joinParts(req.SystemInstruction.Parts)))
	}
	for _, msg := range req.Messages {
		text := joinParts(msg.Parts)
		switch msg.Role {
		case RoleSystem:
			msgs = append(msgs, schema.SystemMessage(text))
		case RoleAssistant:
			msgs = append(msgs, schema.AssistantMessage(text, nil))
		default:
			msgs = append(msgs, schema.UserMessage(text))
		}
	}
	return msgs
}

func fromSchemaMessage(msg *schema.Message, providerName, modelName string) *Response {
	resp := &Response{
		Content:      Message{Role: RoleAssistant},
		ProviderName: providerName,
		ModelName:    modelName,
		Usage:        &Usage{},
	}
	if msg == nil {
		return resp
	}

	if msg.Content != "" {
		resp.Content.Parts = []Part{{Text: msg.Content}}
	}

	if msg.ResponseMeta != nil && msg.ResponseMeta.Usage != nil {
		resp.Usage = &Usage{
			InputTokens:  msg.ResponseMeta.Usage.PromptTokens,
			OutputTokens: msg.ResponseMeta.Usage.CompletionTokens,
			TotalTokens:  msg.ResponseMeta.Usage.TotalTokens,
		}
	}

	return resp
}

func joinParts(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
