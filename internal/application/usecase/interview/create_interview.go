package interview

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

var tracer = otel.Tracer("interview_usecase")

type CreateInterviewUseCase struct {
	repo     interview.Repository
	images   *imageStore
	notifier *changeNotifier
	logger   logger.Logger
}

func NewCreateInterviewUseCase(
	repo interview.Repository,
	uploader service.Uploader,
	cache service.PageCache,
	publisher service.EventPublisher,
	images ImageSettings,
	log logger.Logger,
) *CreateInterviewUseCase {
	return &CreateInterviewUseCase{
		repo:     repo,
		images:   newImageStore(uploader, images, log),
		notifier: &changeNotifier{cache: cache, publisher: publisher, logger: log},
		logger:   log,
	}
}

// InterviewFields carries the editable columns as submitted by the form.
type InterviewFields struct {
	Profile       string
	Company       string
	Step          string
	InterviewDate time.Time
	Note          string
	State         interview.State
	InterviewType string
	Script        string
}

func (f InterviewFields) applyTo(i *interview.Interview) {
	i.Profile = f.Profile
	i.Company = f.Company
	i.Step = f.Step
	i.InterviewDate = f.InterviewDate
	i.Note = interview.NullableText(f.Note)
	i.State = f.State
	i.InterviewType = interview.NullableType(f.InterviewType)
	i.Script = interview.NullableText(f.Script)
}

type CreateInterviewInput struct {
	OwnerID uuid.UUID
	Fields  InterviewFields
	Image   io.Reader
}

type CreateInterviewOutput struct {
	Interview *interview.Interview
}

func (uc *CreateInterviewUseCase) Execute(ctx context.Context, input CreateInterviewInput) (*CreateInterviewOutput, error) {
	ctx, span := tracer.Start(ctx, "CreateInterview")
	defer span.End()

	if input.Fields.State == "" {
		input.Fields.State = interview.StateOngoing
	}

	now := time.Now().UTC()
	newInterview := &interview.Interview{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Fields.applyTo(newInterview)

	if err := newInterview.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if input.Image != nil {
		uploaded, err := uc.images.put(ctx, input.OwnerID, input.Image)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		newInterview.ImageURL = &uploaded.URL
		newInterview.ImageKey = &uploaded.Key
	}

	created, err := uc.repo.Create(ctx, newInterview)
	if err != nil {
		span.RecordError(err)
		if newInterview.HasImage() {
			uc.images.discard(*newInterview.ImageKey)
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("interview_id", created.ID.String()))
	uc.notifier.notify(ctx, service.EventCreated, created.ID, created.OwnerID)
	return &CreateInterviewOutput{Interview: created}, nil
}
