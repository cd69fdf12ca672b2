package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=session.go -destination=../../mocks/mock_session.go -package=mocks
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type ResetTokenStore interface {
	SaveResetToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	// ConsumeResetToken returns the user the token was issued for and invalidates it.
	ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, bool, error)
}

type ResetNotifier interface {
	SendPasswordReset(ctx context.Context, email, link string) error
}
