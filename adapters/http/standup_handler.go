package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	standupUC "github.com/khoahotran/interview-tracker/internal/application/usecase/standup"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/dateutil"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type StandupHandler struct {
	listUseCase   *standupUC.ListStandupsUseCase
	upsertUseCase *standupUC.UpsertStandupUseCase
	deleteUseCase *standupUC.DeleteStandupUseCase
	logger        logger.Logger
}

func NewStandupHandler(
	listUC *standupUC.ListStandupsUseCase,
	upsertUC *standupUC.UpsertStandupUseCase,
	deleteUC *standupUC.DeleteStandupUseCase,
	log logger.Logger,
) *StandupHandler {
	return &StandupHandler{
		listUseCase:   listUC,
		upsertUseCase: upsertUC,
		deleteUseCase: deleteUC,
		logger:        log,
	}
}

func (h *StandupHandler) ListMine(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	standups, err := h.listUseCase.ListMine(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, standups)
}

func (h *StandupHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := h.listUseCase.ListAll(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, entries)
}

// Upsert takes the items as a JSON encoded string, the way the form posts them.
func (h *StandupHandler) Upsert(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	var req UpsertStandupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("standup_date and items are required", err))
		return
	}
	date, err := dateutil.Parse(req.StandupDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("standup_date must be YYYY-MM-DD", err))
		return
	}

	saved, err := h.upsertUseCase.Execute(c.Request.Context(), standupUC.UpsertStandupInput{
		OwnerID:   ownerID,
		Date:      date,
		ItemsJSON: req.Items,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, saved)
}

func (h *StandupHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	standupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid standup ID", err))
		return
	}
	if err := h.deleteUseCase.Execute(c.Request.Context(), standupID, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
