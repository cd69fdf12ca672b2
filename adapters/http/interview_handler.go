package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	interviewUC "github.com/khoahotran/interview-tracker/internal/application/usecase/interview"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/dateutil"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const imageFormField = "image"

type InterviewHandler struct {
	listUseCase         *interviewUC.ListInterviewsUseCase
	createUseCase       *interviewUC.CreateInterviewUseCase
	updateUseCase       *interviewUC.UpdateInterviewUseCase
	updateStatusUseCase *interviewUC.UpdateStatusUseCase
	deleteUseCase       *interviewUC.DeleteInterviewUseCase
	logger              logger.Logger
}

func NewInterviewHandler(
	listUC *interviewUC.ListInterviewsUseCase,
	createUC *interviewUC.CreateInterviewUseCase,
	updateUC *interviewUC.UpdateInterviewUseCase,
	updateStatusUC *interviewUC.UpdateStatusUseCase,
	deleteUC *interviewUC.DeleteInterviewUseCase,
	log logger.Logger,
) *InterviewHandler {
	return &InterviewHandler{
		listUseCase:         listUC,
		createUseCase:       createUC,
		updateUseCase:       updateUC,
		updateStatusUseCase: updateStatusUC,
		deleteUseCase:       deleteUC,
		logger:              log,
	}
}

func (h *InterviewHandler) ListMine(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	f, err := filterFromQuery(c)
	if err != nil {
		c.Error(err)
		return
	}
	f.UserName = ""

	out, err := h.listUseCase.ListMine(c.Request.Context(), ownerID, f)
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, out)
}

func (h *InterviewHandler) ListAll(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		c.Error(err)
		return
	}
	out, err := h.listUseCase.ListAll(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, out)
}

// fieldsFromForm reads the multipart or urlencoded interview form.
func fieldsFromForm(c *gin.Context) (interviewUC.InterviewFields, error) {
	date, err := dateutil.ParseOptional(c.PostForm("interview_date"))
	if err != nil {
		return interviewUC.InterviewFields{}, apperror.NewInvalidInput("interview_date must be YYYY-MM-DD", err)
	}
	f := interviewUC.InterviewFields{
		Profile:       c.PostForm("profile"),
		Company:       c.PostForm("company"),
		Step:          c.PostForm("step"),
		Note:          c.PostForm("note"),
		State:         interview.State(c.PostForm("state")),
		InterviewType: c.PostForm("interview_type"),
		Script:        c.PostForm("script"),
	}
	if date != nil {
		f.InterviewDate = *date
	}
	return f, nil
}

// openImage returns the uploaded picture, or nil when the form carries none.
func openImage(c *gin.Context) (multipart.File, error) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperror.NewInvalidInput("invalid image upload", err)
	}
	if fileHeader.Size == 0 {
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.NewInternal("file cannot open", err)
	}
	return file, nil
}

func asReader(f multipart.File) io.Reader {
	if f == nil {
		return nil
	}
	return f
}

func (h *InterviewHandler) Create(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}

	fields, err := fieldsFromForm(c)
	if err != nil {
		c.Error(err)
		return
	}
	file, err := openImage(c)
	if err != nil {
		c.Error(err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	out, err := h.createUseCase.Execute(c.Request.Context(), interviewUC.CreateInterviewInput{
		OwnerID: ownerID,
		Fields:  fields,
		Image:   asReader(file),
	})
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusCreated, out.Interview)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid interview ID", err))
		return
	}

	fields, err := fieldsFromForm(c)
	if err != nil {
		c.Error(err)
		return
	}
	file, err := openImage(c)
	if err != nil {
		c.Error(err)
		return
	}
	if file != nil {
		defer file.Close()
	}
	removeImage, _ := strconv.ParseBool(c.PostForm("remove_image"))

	out, err := h.updateUseCase.Execute(c.Request.Context(), interviewUC.UpdateInterviewInput{
		InterviewID: interviewID,
		OwnerID:     ownerID,
		Fields:      fields,
		Image:       asReader(file),
		RemoveImage: removeImage,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, out.Interview)
}

func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid interview ID", err))
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("state is required", err))
		return
	}

	updated, err := h.updateStatusUseCase.Execute(c.Request.Context(), interviewUC.UpdateStatusInput{
		InterviewID: interviewID,
		OwnerID:     ownerID,
		State:       interview.State(req.State),
	})
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, updated)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid interview ID", err))
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), interviewUC.DeleteInterviewInput{InterviewID: interviewID, OwnerID: ownerID}); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
