package standup

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type DeleteStandupUseCase struct {
	repo      standup.Repository
	cache     service.PageCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewDeleteStandupUseCase(repo standup.Repository, cache service.PageCache, publisher service.EventPublisher, log logger.Logger) *DeleteStandupUseCase {
	return &DeleteStandupUseCase{repo: repo, cache: cache, publisher: publisher, logger: log}
}

func (uc *DeleteStandupUseCase) Execute(ctx context.Context, id, ownerID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "DeleteStandup")
	defer span.End()

	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		span.RecordError(err)
		return err
	}
	notifyStandupChange(ctx, uc.cache, uc.publisher, uc.logger, service.EventDeleted, id, ownerID)
	return nil
}
