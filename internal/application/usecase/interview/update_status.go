package interview

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type UpdateStatusUseCase struct {
	repo     interview.Repository
	notifier *changeNotifier
}

func NewUpdateStatusUseCase(repo interview.Repository, cache service.PageCache, publisher service.EventPublisher, log logger.Logger) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		repo:     repo,
		notifier: &changeNotifier{cache: cache, publisher: publisher, logger: log},
	}
}

type UpdateStatusInput struct {
	InterviewID uuid.UUID
	OwnerID     uuid.UUID
	State       interview.State
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, input UpdateStatusInput) (*interview.Interview, error) {
	ctx, span := tracer.Start(ctx, "UpdateInterviewStatus")
	defer span.End()

	if !input.State.Valid() {
		return nil, apperror.NewInvalidInput(interview.ErrInvalidState.Error(), interview.ErrInvalidState)
	}

	updated, err := uc.repo.UpdateState(ctx, input.InterviewID, input.OwnerID, input.State)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.notifier.notify(ctx, service.EventStatusChanged, updated.ID, updated.OwnerID)
	return updated, nil
}
