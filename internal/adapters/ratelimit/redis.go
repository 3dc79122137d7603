package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect builds a Redis client from either a redis:// URL or a bare address.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisStore counts requests in Redis so the window budget is shared across
// replicas. The key TTL doubles as the window reset; counters are not durable
// accounting and disappear when the window lapses.
type RedisStore struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRedisStore(client *redis.Client, window time.Duration, max int) *RedisStore {
	return &RedisStore{client: client, window: window, max: max}
}

func (s *RedisStore) Allow(ctx context.Context, identity string, _ time.Time) (bool, error) {
	key := "download:rate:" + identity
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(s.max), nil
}
