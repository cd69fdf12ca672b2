package auth

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/internal/domain/user"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/auth"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const (
	MsgInvalidCredentials  = "Invalid login credentials"
	MsgVerificationMissing = "Account verification pending. Please contact admin."
	MsgVerificationPending = "Your account is pending admin verification. Please try again later."
)

type SignInUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewSignInUseCase(uRepo user.Repository, pRepo profile.Repository, jwtSvc *auth.JWTService, log logger.Logger) *SignInUseCase {
	return &SignInUseCase{userRepo: uRepo, profileRepo: pRepo, jwtSvc: jwtSvc, logger: log}
}

type SignInInput struct {
	Email    string
	Password string
}

type SignInOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Profile     *profile.Profile
}

func (uc *SignInUseCase) Execute(ctx context.Context, input SignInInput) (*SignInOutput, error) {
	ctx, span := tracer.Start(ctx, "SignIn")
	defer span.End()

	u, err := uc.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewUnauthorized(MsgInvalidCredentials, nil)
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		err := apperror.NewUnauthorized(MsgInvalidCredentials, nil)
		span.RecordError(err)
		return nil, err
	}

	p, err := uc.profileRepo.FindByID(ctx, u.ID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewUnauthorized(MsgVerificationMissing, nil)
		}
		return nil, err
	}
	if !p.Verified {
		uc.logger.Info("Sign in refused for unverified account", zap.String("user_id", u.ID.String()))
		return nil, apperror.NewUnauthorized(MsgVerificationPending, nil)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &SignInOutput{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(uc.jwtSvc.TokenLifespan()),
		Profile:     p,
	}, nil
}
