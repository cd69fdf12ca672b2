package revalidate

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// RevalidatePagesUseCase drops cached pages named by a change event.
type RevalidatePagesUseCase struct {
	cache  service.PageCache
	logger logger.Logger
}

func NewRevalidatePagesUseCase(cache service.PageCache, log logger.Logger) *RevalidatePagesUseCase {
	return &RevalidatePagesUseCase{cache: cache, logger: log}
}

func (uc *RevalidatePagesUseCase) Execute(ctx context.Context, evt service.ChangeEvent) error {
	if len(evt.Pages) == 0 {
		return nil
	}
	if err := uc.cache.Revalidate(ctx, evt.Pages...); err != nil {
		return err
	}
	uc.logger.Debug("Pages revalidated",
		zap.String("resource", evt.Resource),
		zap.String("event_type", string(evt.EventType)),
		zap.Strings("pages", evt.Pages),
	)
	return nil
}
