package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const pageCachePrefix = "page:"

type redisPageCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisPageCache(rdb *redis.Client, log logger.Logger) service.PageCache {
	return &redisPageCache{rdb: rdb, logger: log}
}

func pageKey(page, variant string) string {
	return pageCachePrefix + page + ":" + variant
}

func (c *redisPageCache) Get(ctx context.Context, page, variant string) ([]byte, bool, error) {
	payload, err := c.rdb.Get(ctx, pageKey(page, variant)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read page cache: %w", err)
	}
	return payload, true, nil
}

func (c *redisPageCache) Set(ctx context.Context, page, variant string, payload []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, pageKey(page, variant), payload, ttl).Err(); err != nil {
		return fmt.Errorf("write page cache: %w", err)
	}
	return nil
}

func (c *redisPageCache) Revalidate(ctx context.Context, pages ...string) error {
	for _, page := range pages {
		iter := c.rdb.Scan(ctx, 0, pageKey(page, "*"), 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("scan page cache for %s: %w", page, err)
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("drop page cache for %s: %w", page, err)
		}
		c.logger.Debug("Revalidated page", zap.String("page", page), zap.Int("keys", len(keys)))
	}
	return nil
}
