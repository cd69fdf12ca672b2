package service

import (
	"context"
)

type ChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

//go:generate mockgen -source=llm.go -destination=../../mocks/mock_llm.go -package=mocks
type LLMService interface {
	GenerateChatResponse(ctx context.Context, req ChatRequest) (string, error)
}
