package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/interview-tracker/internal/application/service"
)

const (
	revokedTokenPrefix = "session:revoked:"
	resetTokenPrefix   = "session:reset:"
)

// RedisSessionStore keeps revoked session ids and password reset tokens, both with a TTL.
type RedisSessionStore struct {
	rdb *redis.Client
}

var (
	_ service.TokenRevoker    = (*RedisSessionStore)(nil)
	_ service.ResetTokenStore = (*RedisSessionStore)(nil)
)

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check session revocation: %w", err)
	}
	return n > 0, nil
}

func (s *RedisSessionStore) SaveResetToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, resetTokenPrefix+token, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, bool, error) {
	val, err := s.rdb.GetDel(ctx, resetTokenPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("consume reset token: %w", err)
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return id, true, nil
}
