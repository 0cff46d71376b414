package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps fixed-window counters in Redis so the quota holds across
// multiple API processes. The window number is part of the key; expired
// windows age out via TTL instead of an explicit reset.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window int64, ttl time.Duration) (int64, error) {
	redisKey := "ratelimit:" + key + ":" + strconv.FormatInt(window, 10)

	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	// Twice the window is enough: the key is dead once the window passes.
	pipe.Expire(ctx, redisKey, 2*ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return incr.Val(), nil
}
