package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UnknownName is shown for records whose owner has no profile row.
const UnknownName = "Unknown"

// Profile shares its ID with the user it describes.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Verified  bool      `json:"verified"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrProfileNotFound = errors.New("profile not found")

//go:generate mockgen -source=profile.go -destination=../../mocks/mock_profile_repo.go -package=mocks -mock_names=Repository=MockProfileRepository
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	ListAll(ctx context.Context) ([]*Profile, error)
	ListPending(ctx context.Context) ([]*Profile, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*Profile, error)
}

// NameIndex maps profile id to display name.
func NameIndex(profiles []*Profile) map[uuid.UUID]string {
	idx := make(map[uuid.UUID]string, len(profiles))
	for _, p := range profiles {
		idx[p.ID] = p.Name
	}
	return idx
}

func NameOf(idx map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := idx[id]; ok && name != "" {
		return name
	}
	return UnknownName
}
