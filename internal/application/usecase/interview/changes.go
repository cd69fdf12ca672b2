package interview

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// changeNotifier drops every cached interview page right away and tells the worker through an
// interview event, so replicas sharing other caches catch up too.
type changeNotifier struct {
	cache     service.PageCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func (n *changeNotifier) notify(ctx context.Context, evtType service.EventType, id, ownerID uuid.UUID) {
	pages := []string{service.PageDashboard, service.PageInterviewsAll}
	if err := n.cache.Revalidate(ctx, pages...); err != nil {
		n.logger.Warn("Failed to revalidate interview pages", zap.String("interview_id", id.String()), zap.Error(err))
	}

	evt := service.ChangeEvent{
		EventType:  evtType,
		Resource:   "interview",
		ResourceID: id,
		OwnerID:    ownerID,
		Pages:      pages,
	}
	go func() {
		if err := n.publisher.PublishInterviewEvent(context.Background(), evt); err != nil {
			n.logger.Error("Failed to publish interview event", err,
				zap.String("interview_id", id.String()), zap.String("event_type", string(evtType)))
		}
	}()
}
