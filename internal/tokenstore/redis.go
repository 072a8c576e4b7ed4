package tokenstore

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store keeps revoked token ids until the token would have expired anyway.
type Store interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to keep.
		return nil
	}
	return s.rdb.Set(ctx, key(tokenID), "1", ttl).Err()
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func key(tokenID string) string {
	return "revoked_token:" + tokenID
}

var _ Store = (*RedisStore)(nil)
