package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/interview-tracker/internal/domain/profile"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user already registered")
)

//go:generate mockgen -source=user.go -destination=../../mocks/mock_user_repo.go -package=mocks -mock_names=Repository=MockUserRepository
type Repository interface {
	Create(ctx context.Context, u *User) error
	// CreateWithProfile stores the user and its profile atomically.
	CreateWithProfile(ctx context.Context, u *User, p *profile.Profile) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
