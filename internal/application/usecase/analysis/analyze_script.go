package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const NoResponse = "No response generated"

const systemPrompt = `You are an expert interview coach and analyst. Your role is to help users understand and improve their interview performance by analyzing interview scripts.

ALWAYS format your responses in well-structured Markdown with:
- Use **bold** for key points and important information
- Use bullet points (- or *) for lists
- Use numbered lists (1., 2., 3.) for sequential steps or rankings
- Use ## for main sections and ### for subsections
- Use ` + "`code blocks`" + ` for specific quotes or technical terms
- Use > blockquotes for emphasized takeaways
- Use horizontal rules (---) to separate major sections when appropriate

When analyzing interviews, consider:
- Strengths and areas for improvement
- Communication clarity and effectiveness
- Technical accuracy (if applicable)
- Follow-up questions that could have been asked
- Overall impression and recommendations

Be concise, actionable, and constructive in your feedback.`

var tracer = otel.Tracer("analysis_usecase")

type Settings struct {
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type AnalyzeScriptUseCase struct {
	llm      service.LLMService
	settings Settings
	logger   logger.Logger
}

func NewAnalyzeScriptUseCase(llm service.LLMService, settings Settings, log logger.Logger) *AnalyzeScriptUseCase {
	return &AnalyzeScriptUseCase{llm: llm, settings: settings, logger: log}
}

type AnalyzeScriptInput struct {
	OwnerID uuid.UUID
	Script  string
	Prompt  string
}

func userMessage(script, prompt string) string {
	return fmt.Sprintf("Interview Script:\n\n%s\n\nUser Question/Request:\n%s", script, prompt)
}

// Execute asks the model about a script. Script and prompt are sent as given.
func (uc *AnalyzeScriptUseCase) Execute(ctx context.Context, input AnalyzeScriptInput) (string, error) {
	ctx, span := tracer.Start(ctx, "AnalyzeScript", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if strings.TrimSpace(input.Script) == "" || strings.TrimSpace(input.Prompt) == "" {
		return "", apperror.NewInvalidInput("Script and prompt are required", nil)
	}

	if uc.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.Timeout)
		defer cancel()
	}

	reply, err := uc.llm.GenerateChatResponse(ctx, service.ChatRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userMessage(input.Script, input.Prompt),
		Temperature:  uc.settings.Temperature,
		MaxTokens:    uc.settings.MaxTokens,
	})
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Script analysis failed", err, zap.String("user_id", input.OwnerID.String()))
		return "", apperror.NewUpstream("Failed to analyze script", err)
	}

	if reply == "" {
		return NoResponse, nil
	}
	return reply, nil
}
