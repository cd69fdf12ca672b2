package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/config"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type openAILLMAdapter struct {
	client chatCompleter
	model  string
	log    logger.Logger
}

// NewOpenAILLMAdapter talks to OpenAI, or to any compatible server when a base URL is set.
func NewOpenAILLMAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.LLM.OpenAIKey == "" && cfg.LLM.OpenAIBase == "" {
		return nil, fmt.Errorf("openai api key is not configured")
	}

	clientCfg := openai.DefaultConfig(cfg.LLM.OpenAIKey)
	if cfg.LLM.OpenAIBase != "" {
		clientCfg.BaseURL = cfg.LLM.OpenAIBase
	}

	log.Info("OpenAI chat adapter initialized")
	return &openAILLMAdapter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.LLM.OpenAIModel,
		log:    log,
	}, nil
}

func (a *openAILLMAdapter) GenerateChatResponse(ctx context.Context, req service.ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
