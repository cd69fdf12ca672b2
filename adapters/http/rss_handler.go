package http

import (
	"github.com/gin-gonic/gin"

	standupUC "github.com/khoahotran/interview-tracker/internal/application/usecase/standup"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type RSSHandler struct {
	feedUseCase *standupUC.FeedUseCase
	logger      logger.Logger
}

func NewRSSHandler(uc *standupUC.FeedUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{feedUseCase: uc, logger: log}
}

func (h *RSSHandler) StandupFeed(c *gin.Context) {
	feed, err := h.feedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate standup feed", err))
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write standup feed to response", err)
	}
}
