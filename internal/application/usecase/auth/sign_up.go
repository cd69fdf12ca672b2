package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/internal/domain/user"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/auth"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const SignUpPendingMessage = "Account created! Your account is pending admin verification. You will be able to sign in once approved."

var tracer = otel.Tracer("auth_usecase")

type SignUpUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewSignUpUseCase(uRepo user.Repository, log logger.Logger) *SignUpUseCase {
	return &SignUpUseCase{userRepo: uRepo, logger: log}
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

type SignUpOutput struct {
	UserID  uuid.UUID
	Message string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return apperror.NewInvalidInput("Unable to validate email address: invalid format", err)
	}
	if len(password) < auth.MinPasswordLength {
		return apperror.NewInvalidInput("Password should be at least 6 characters.", nil)
	}
	return nil
}

// Execute registers the user with an unverified profile. No session is issued.
func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*SignUpOutput, error) {
	ctx, span := tracer.Start(ctx, "SignUp")
	defer span.End()

	email := normalizeEmail(input.Email)
	if err := validateCredentials(email, input.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &user.User{ID: uuid.New(), Email: email, PasswordHash: hash, CreatedAt: now}
	p := &profile.Profile{ID: u.ID, Name: strings.TrimSpace(input.Name), CreatedAt: now}
	if err := uc.userRepo.CreateWithProfile(ctx, u, p); err != nil {
		if !errors.Is(err, apperror.ErrConflict) {
			uc.logger.Error("Failed to register user", err, zap.String("email", email))
		}
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	uc.logger.Info("User signed up, awaiting verification", zap.String("user_id", u.ID.String()))
	return &SignUpOutput{UserID: u.ID, Message: SignUpPendingMessage}, nil
}
