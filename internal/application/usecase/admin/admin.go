package admin

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type AdminUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewAdminUseCase(pRepo profile.Repository, log logger.Logger) *AdminUseCase {
	return &AdminUseCase{profileRepo: pRepo, logger: log}
}

func (uc *AdminUseCase) ListPendingProfiles(ctx context.Context) ([]*profile.Profile, error) {
	return uc.profileRepo.ListPending(ctx)
}

func (uc *AdminUseCase) VerifyProfile(ctx context.Context, adminID, profileID uuid.UUID, verified bool) (*profile.Profile, error) {
	p, err := uc.profileRepo.SetVerified(ctx, profileID, verified)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("Profile verification changed",
		zap.String("admin_id", adminID.String()),
		zap.String("profile_id", profileID.String()),
		zap.Bool("verified", verified),
	)
	return p, nil
}
