package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analysisUC "github.com/khoahotran/interview-tracker/internal/application/usecase/analysis"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type AnalysisHandler struct {
	analyzeUseCase *analysisUC.AnalyzeScriptUseCase
	logger         logger.Logger
}

func NewAnalysisHandler(uc *analysisUC.AnalyzeScriptUseCase, log logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzeUseCase: uc, logger: log}
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Script and prompt are required", err))
		return
	}

	reply, err := h.analyzeUseCase.Execute(c.Request.Context(), analysisUC.AnalyzeScriptInput{
		OwnerID: ownerID,
		Script:  req.Script,
		Prompt:  req.Prompt,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": reply})
}
