package interview

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type UpdateInterviewUseCase struct {
	repo     interview.Repository
	images   *imageStore
	notifier *changeNotifier
	logger   logger.Logger
}

func NewUpdateInterviewUseCase(
	repo interview.Repository,
	uploader service.Uploader,
	cache service.PageCache,
	publisher service.EventPublisher,
	images ImageSettings,
	log logger.Logger,
) *UpdateInterviewUseCase {
	return &UpdateInterviewUseCase{
		repo:     repo,
		images:   newImageStore(uploader, images, log),
		notifier: &changeNotifier{cache: cache, publisher: publisher, logger: log},
		logger:   log,
	}
}

type UpdateInterviewInput struct {
	InterviewID uuid.UUID
	OwnerID     uuid.UUID
	Fields      InterviewFields
	Image       io.Reader
	RemoveImage bool
}

type UpdateInterviewOutput struct {
	Interview *interview.Interview
}

// Execute rewrites every editable column. A new image replaces the old one, and the old
// object is deleted only after the row points at the replacement.
func (uc *UpdateInterviewUseCase) Execute(ctx context.Context, input UpdateInterviewInput) (*UpdateInterviewOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdateInterview")
	defer span.End()
	span.SetAttributes(attribute.String("interview_id", input.InterviewID.String()))

	existing, err := uc.repo.FindByID(ctx, input.InterviewID, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if input.Fields.State == "" {
		input.Fields.State = existing.State
	}
	input.Fields.applyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	var oldKey, newKey string
	if existing.HasImage() {
		oldKey = *existing.ImageKey
	}

	switch {
	case input.Image != nil:
		uploaded, err := uc.images.put(ctx, input.OwnerID, input.Image)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		newKey = uploaded.Key
		existing.ImageURL = &uploaded.URL
		existing.ImageKey = &uploaded.Key
	case input.RemoveImage:
		existing.ImageURL = nil
		existing.ImageKey = nil
	default:
		oldKey = ""
	}

	updated, err := uc.repo.Update(ctx, existing)
	if err != nil {
		span.RecordError(err)
		uc.images.discard(newKey)
		return nil, err
	}
	uc.images.discard(oldKey)

	uc.notifier.notify(ctx, service.EventUpdated, updated.ID, updated.OwnerID)
	return &UpdateInterviewOutput{Interview: updated}, nil
}
