package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/user"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/auth"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const MsgResetSent = "Check your email for the password reset link!"

type RequestPasswordResetUseCase struct {
	userRepo  user.Repository
	tokens    service.ResetTokenStore
	notifier  service.ResetNotifier
	ttl       time.Duration
	urlFormat string
	logger    logger.Logger
}

func NewRequestPasswordResetUseCase(
	uRepo user.Repository,
	tokens service.ResetTokenStore,
	notifier service.ResetNotifier,
	ttl time.Duration,
	urlFormat string,
	log logger.Logger,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:  uRepo,
		tokens:    tokens,
		notifier:  notifier,
		ttl:       ttl,
		urlFormat: urlFormat,
		logger:    log,
	}
}

type RequestPasswordResetInput struct {
	Email string
}

// Execute issues a single-use token for a known email. Unknown emails get the same reply.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, input RequestPasswordResetInput) (string, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return "", apperror.NewInvalidInput("Email is required", nil)
	}

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Info("Password reset requested for unknown email")
			return MsgResetSent, nil
		}
		return "", err
	}

	token := shortuuid.New()
	if err := uc.tokens.SaveResetToken(ctx, token, u.ID, uc.ttl); err != nil {
		return "", apperror.NewStore(err)
	}

	link := fmt.Sprintf(uc.urlFormat, token)
	if err := uc.notifier.SendPasswordReset(ctx, u.Email, link); err != nil {
		uc.logger.Error("Failed to deliver password reset", err, zap.String("user_id", u.ID.String()))
		return "", apperror.NewUpstream("failed to send password reset", err)
	}
	return MsgResetSent, nil
}

type UpdatePasswordUseCase struct {
	userRepo user.Repository
	tokens   service.ResetTokenStore
	logger   logger.Logger
}

func NewUpdatePasswordUseCase(uRepo user.Repository, tokens service.ResetTokenStore, log logger.Logger) *UpdatePasswordUseCase {
	return &UpdatePasswordUseCase{userRepo: uRepo, tokens: tokens, logger: log}
}

// UpdatePasswordInput identifies the user either by a reset token or by the current session.
type UpdatePasswordInput struct {
	ResetToken  string
	OwnerID     uuid.UUID
	NewPassword string
}

func (uc *UpdatePasswordUseCase) Execute(ctx context.Context, input UpdatePasswordInput) error {
	if len(input.NewPassword) < auth.MinPasswordLength {
		return apperror.NewInvalidInput("Password should be at least 6 characters.", nil)
	}

	userID := input.OwnerID
	if input.ResetToken != "" {
		id, ok, err := uc.tokens.ConsumeResetToken(ctx, input.ResetToken)
		if err != nil {
			return apperror.NewStore(err)
		}
		if !ok {
			return apperror.NewUnauthorized("Password reset link is invalid or has expired", nil)
		}
		userID = id
	}
	if userID == uuid.Nil {
		return apperror.NewUnauthorized("Unauthorized", nil)
	}

	hash, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	uc.logger.Info("Password updated", zap.String("user_id", userID.String()))
	return nil
}
