package auth

import (
	"context"
	"time"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
)

type SignOutUseCase struct {
	revoker service.TokenRevoker
}

func NewSignOutUseCase(revoker service.TokenRevoker) *SignOutUseCase {
	return &SignOutUseCase{revoker: revoker}
}

type SignOutInput struct {
	TokenID   string
	ExpiresAt time.Time
}

// Execute revokes the session until its own expiry.
func (uc *SignOutUseCase) Execute(ctx context.Context, input SignOutInput) error {
	if input.TokenID == "" {
		return apperror.NewUnauthorized("Unauthorized", nil)
	}
	if err := uc.revoker.Revoke(ctx, input.TokenID, time.Until(input.ExpiresAt)); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}
