package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/config"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type geminiLLMAdapter struct {
	model llms.Model
	log   logger.Logger
}

func NewGeminiLLMAdapter(ctx context.Context, cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.LLM.GeminiKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.LLM.GeminiKey),
		googleai.WithDefaultModel(cfg.LLM.GeminiModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	log.Info("Gemini chat adapter initialized")
	return &geminiLLMAdapter{model: model, log: log}, nil
}

func (a *geminiLLMAdapter) GenerateChatResponse(ctx context.Context, req service.ChatRequest) (string, error) {
	messages := make([]llms.MessageContent, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.SystemPrompt))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, req.UserPrompt))

	resp, err := a.model.GenerateContent(ctx, messages,
		llms.WithTemperature(float64(req.Temperature)),
		llms.WithMaxTokens(req.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}
