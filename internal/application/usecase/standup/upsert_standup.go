package standup

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const (
	MsgInvalidItems = "Invalid items format"
	MsgNoItems      = "Please add at least one item with title and content"
)

var tracer = otel.Tracer("standup_usecase")

func notifyStandupChange(ctx context.Context, cache service.PageCache, publisher service.EventPublisher, log logger.Logger, evtType service.EventType, id, ownerID uuid.UUID) {
	pages := []string{service.PageStandups, service.PageStandupsAll}
	if err := cache.Revalidate(ctx, pages...); err != nil {
		log.Warn("Failed to revalidate standup pages", zap.String("standup_id", id.String()), zap.Error(err))
	}

	evt := service.ChangeEvent{
		EventType:  evtType,
		Resource:   "standup",
		ResourceID: id,
		OwnerID:    ownerID,
		Pages:      pages,
	}
	go func() {
		if err := publisher.PublishStandupEvent(context.Background(), evt); err != nil {
			log.Error("Failed to publish standup event", err, zap.String("standup_id", id.String()))
		}
	}()
}

type UpsertStandupUseCase struct {
	repo      standup.Repository
	cache     service.PageCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewUpsertStandupUseCase(repo standup.Repository, cache service.PageCache, publisher service.EventPublisher, log logger.Logger) *UpsertStandupUseCase {
	return &UpsertStandupUseCase{repo: repo, cache: cache, publisher: publisher, logger: log}
}

// UpsertStandupInput carries the items as the raw JSON text posted by the form.
type UpsertStandupInput struct {
	OwnerID   uuid.UUID
	Date      time.Time
	ItemsJSON string
}

func (uc *UpsertStandupUseCase) Execute(ctx context.Context, input UpsertStandupInput) (*standup.Standup, error) {
	ctx, span := tracer.Start(ctx, "UpsertStandup")
	defer span.End()

	if input.Date.IsZero() {
		return nil, apperror.NewInvalidInput("Standup date is required", nil)
	}

	var items []standup.Item
	if err := json.Unmarshal([]byte(input.ItemsJSON), &items); err != nil {
		return nil, apperror.NewInvalidInput(MsgInvalidItems, err)
	}

	cleaned := standup.CleanItems(items)
	if len(cleaned) == 0 {
		return nil, apperror.NewInvalidInput(MsgNoItems, standup.ErrNoItems)
	}

	now := time.Now().UTC()
	saved, err := uc.repo.Upsert(ctx, &standup.Standup{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		Date:      input.Date,
		Items:     cleaned,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("standup_id", saved.ID.String()))
	notifyStandupChange(ctx, uc.cache, uc.publisher, uc.logger, service.EventUpserted, saved.ID, saved.OwnerID)
	return saved, nil
}
