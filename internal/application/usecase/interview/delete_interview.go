package interview

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type DeleteInterviewUseCase struct {
	repo     interview.Repository
	uploader service.Uploader
	notifier *changeNotifier
	logger   logger.Logger
}

func NewDeleteInterviewUseCase(repo interview.Repository, uploader service.Uploader, cache service.PageCache, publisher service.EventPublisher, log logger.Logger) *DeleteInterviewUseCase {
	return &DeleteInterviewUseCase{
		repo:     repo,
		uploader: uploader,
		notifier: &changeNotifier{cache: cache, publisher: publisher, logger: log},
		logger:   log,
	}
}

type DeleteInterviewInput struct {
	InterviewID uuid.UUID
	OwnerID     uuid.UUID
}

// Execute removes the stored image before the row. A failed image delete is logged and the
// row is still removed.
func (uc *DeleteInterviewUseCase) Execute(ctx context.Context, input DeleteInterviewInput) error {
	ctx, span := tracer.Start(ctx, "DeleteInterview")
	defer span.End()

	existing, err := uc.repo.FindByID(ctx, input.InterviewID, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if existing.HasImage() {
		if err := uc.uploader.Delete(ctx, *existing.ImageKey); err != nil {
			uc.logger.Warn("Failed to delete interview image", zap.String("image_key", *existing.ImageKey), zap.Error(err))
		}
	}

	if err := uc.repo.Delete(ctx, input.InterviewID, input.OwnerID); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notifier.notify(ctx, service.EventDeleted, input.InterviewID, input.OwnerID)
	return nil
}
