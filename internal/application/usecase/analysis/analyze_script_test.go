package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/mocks"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

var settings = Settings{Temperature: 0.7, MaxTokens: 1500, Timeout: time.Second}

func TestAnalyzeScriptUseCase_BuildsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	llm := mocks.NewMockLLMService(ctrl)
	llm.EXPECT().GenerateChatResponse(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req service.ChatRequest) (string, error) {
			if _, ok := ctx.Deadline(); !ok {
				return "", errors.New("missing deadline")
			}
			if req.UserPrompt != "Interview Script:\n\nQ: hi\n\nUser Question/Request:\nHow did I do?" {
				return "", errors.New("unexpected user prompt: " + req.UserPrompt)
			}
			if !strings.HasPrefix(req.SystemPrompt, "You are an expert interview coach and analyst.") ||
				req.Temperature != 0.7 || req.MaxTokens != 1500 {
				return "", errors.New("unexpected request settings")
			}
			return "## Summary\nGood.", nil
		})

	got, err := NewAnalyzeScriptUseCase(llm, settings, logger.NewNopLogger()).
		Execute(context.Background(), AnalyzeScriptInput{Script: "Q: hi", Prompt: "How did I do?"})

	require.NoError(t, err)
	assert.Equal(t, "## Summary\nGood.", got)
}

func TestAnalyzeScriptUseCase_EmptyReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	llm := mocks.NewMockLLMService(ctrl)
	llm.EXPECT().GenerateChatResponse(gomock.Any(), gomock.Any()).Return("", nil)

	got, err := NewAnalyzeScriptUseCase(llm, settings, logger.NewNopLogger()).
		Execute(context.Background(), AnalyzeScriptInput{Script: "s", Prompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, NoResponse, got)
}

func TestAnalyzeScriptUseCase_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	llm := mocks.NewMockLLMService(ctrl)
	llm.EXPECT().GenerateChatResponse(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

	_, err := NewAnalyzeScriptUseCase(llm, settings, logger.NewNopLogger()).
		Execute(context.Background(), AnalyzeScriptInput{Script: "s", Prompt: "p"})

	require.ErrorIs(t, err, apperror.ErrUpstream)
	assert.Equal(t, "rate limited", apperror.Message(err))
}

func TestAnalyzeScriptUseCase_RequiresInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := NewAnalyzeScriptUseCase(mocks.NewMockLLMService(ctrl), settings, logger.NewNopLogger()).
		Execute(context.Background(), AnalyzeScriptInput{Script: " ", Prompt: "p"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
