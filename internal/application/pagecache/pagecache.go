// Package pagecache memoizes list payloads in a service.PageCache.
package pagecache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type Loader[T any] struct {
	Cache  service.PageCache
	TTL    time.Duration
	Logger logger.Logger
}

// Load serves page/variant from the cache, falling back to load and storing its result.
// Cache failures are logged and never fail the read.
func (l Loader[T]) Load(ctx context.Context, page, variant string, load func(context.Context) (T, error)) (T, error) {
	if payload, ok, err := l.Cache.Get(ctx, page, variant); err != nil {
		l.Logger.Warn("Page cache read failed", zap.String("page", page), zap.Error(err))
	} else if ok {
		var v T
		if err := json.Unmarshal(payload, &v); err == nil {
			return v, nil
		}
		l.Logger.Warn("Discarding unreadable cached page", zap.String("page", page))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		l.Logger.Warn("Page payload not cacheable", zap.String("page", page), zap.Error(err))
		return v, nil
	}
	if err := l.Cache.Set(ctx, page, variant, payload, l.TTL); err != nil {
		l.Logger.Warn("Page cache write failed", zap.String("page", page), zap.Error(err))
	}
	return v, nil
}
