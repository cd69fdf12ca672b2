package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/interview-tracker/internal/application/listview"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/dateutil"
)

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required"`
	Token    string `json:"token"`
}

type UpdateStatusRequest struct {
	State string `json:"state" binding:"required"`
}

type AnalyzeRequest struct {
	Script string `json:"script" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

type UpsertStandupRequest struct {
	StandupDate string `json:"standup_date" form:"standup_date" binding:"required"`
	Items       string `json:"items" form:"items" binding:"required"`
}

type VerifyProfileRequest struct {
	Verified *bool `json:"verified"`
}

type AuthSessionDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	IsAdmin     bool   `json:"is_admin"`
}

// filterFromQuery reads ?user=&profile=a&profile=b&company=&status=&date_from=&date_to=.
// profile also accepts a comma separated list.
func filterFromQuery(c *gin.Context) (listview.Filter, error) {
	f := listview.Filter{
		UserName: strings.TrimSpace(c.Query("user")),
		Company:  strings.TrimSpace(c.Query("company")),
	}
	for _, raw := range c.QueryArray("profile") {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				f.Profiles = append(f.Profiles, p)
			}
		}
	}

	if status := c.Query("status"); status != "" && status != "all" {
		f.Status = interview.State(status)
		if !f.Status.Valid() {
			return f, apperror.NewInvalidInput(interview.ErrInvalidState.Error(), interview.ErrInvalidState)
		}
	}

	var err error
	if f.DateFrom, err = dateutil.ParseOptional(c.Query("date_from")); err != nil {
		return f, apperror.NewInvalidInput("date_from must be YYYY-MM-DD", err)
	}
	if f.DateTo, err = dateutil.ParseOptional(c.Query("date_to")); err != nil {
		return f, apperror.NewInvalidInput("date_to must be YYYY-MM-DD", err)
	}
	return f, nil
}
