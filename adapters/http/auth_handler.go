package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/khoahotran/interview-tracker/internal/application/usecase/auth"
	"github.com/khoahotran/interview-tracker/internal/domain/user"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type AuthHandler struct {
	signUpUseCase         *authUC.SignUpUseCase
	signInUseCase         *authUC.SignInUseCase
	signOutUseCase        *authUC.SignOutUseCase
	requestResetUseCase   *authUC.RequestPasswordResetUseCase
	updatePasswordUseCase *authUC.UpdatePasswordUseCase
	userRepo              user.Repository
	logger                logger.Logger
}

func NewAuthHandler(
	signUpUC *authUC.SignUpUseCase,
	signInUC *authUC.SignInUseCase,
	signOutUC *authUC.SignOutUseCase,
	requestResetUC *authUC.RequestPasswordResetUseCase,
	updatePasswordUC *authUC.UpdatePasswordUseCase,
	userRepo user.Repository,
	log logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		signUpUseCase:         signUpUC,
		signInUseCase:         signInUC,
		signOutUseCase:        signOutUC,
		requestResetUseCase:   requestResetUC,
		updatePasswordUseCase: updatePasswordUC,
		userRepo:              userRepo,
		logger:                log,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Email and password are required", err))
		return
	}

	output, err := h.signUpUseCase.Execute(c.Request.Context(), authUC.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": output.Message})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Email and password are required", err))
		return
	}

	output, err := h.signInUseCase.Execute(c.Request.Context(), authUC.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, AuthSessionDTO{
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt.Unix(),
		UserID:      output.Profile.ID.String(),
		Name:        output.Profile.Name,
		IsAdmin:     output.Profile.IsAdmin,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	tokenID, expiresAt := getSessionFromGinContext(c)
	if err := h.signOutUseCase.Execute(c.Request.Context(), authUC.SignOutInput{TokenID: tokenID, ExpiresAt: expiresAt}); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CurrentUser reports the signed-in user and profile.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized(msgUnauthorized, nil))
		return
	}
	u, err := h.userRepo.FindByID(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	p, _ := GetProfileFromGinContext(c)
	respond(c, http.StatusOK, gin.H{"id": u.ID, "email": u.Email, "profile": p})
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Email is required", err))
		return
	}
	msg, err := h.requestResetUseCase.Execute(c.Request.Context(), authUC.RequestPasswordResetInput{Email: req.Email})
	if err != nil {
		c.Error(err)
		return
	}
	respondMessage(c, msg)
}

// UpdatePassword accepts either a reset token or a signed-in session.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Password is required", err))
		return
	}
	ownerID, _ := GetOwnerIDFromGinContext(c)

	err := h.updatePasswordUseCase.Execute(c.Request.Context(), authUC.UpdatePasswordInput{
		ResetToken:  req.Token,
		OwnerID:     ownerID,
		NewPassword: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
