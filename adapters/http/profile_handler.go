package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminUC "github.com/khoahotran/interview-tracker/internal/application/usecase/admin"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// ProfileHandler serves the admin verification queue.
type ProfileHandler struct {
	adminUseCase *adminUC.AdminUseCase
	logger       logger.Logger
}

func NewProfileHandler(uc *adminUC.AdminUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{adminUseCase: uc, logger: log}
}

func (h *ProfileHandler) ListPending(c *gin.Context) {
	profiles, err := h.adminUseCase.ListPendingProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, profiles)
}

func (h *ProfileHandler) Verify(c *gin.Context) {
	adminID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}

	var req VerifyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}
	verified := true
	if req.Verified != nil {
		verified = *req.Verified
	}

	p, err := h.adminUseCase.VerifyProfile(c.Request.Context(), adminID, profileID, verified)
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, p)
}
