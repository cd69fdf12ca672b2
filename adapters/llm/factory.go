package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/config"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// NewLLMService picks the adapter named by llm.provider.
func NewLLMService(ctx context.Context, cfg config.Config, log logger.Logger) (service.LLMService, error) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "", "openai":
		return NewOpenAILLMAdapter(cfg, log)
	case "gemini":
		return NewGeminiLLMAdapter(ctx, cfg, log)
	}
	return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
}
