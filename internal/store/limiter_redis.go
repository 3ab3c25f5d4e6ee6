package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guestLimiterKeyPrefix = "ratelimit:guest:"

// RedisRateLimiter is a fixed-window counter keyed by an arbitrary string
// (the client IP for guest provisioning).
type RedisRateLimiter struct {
	client redis.Cmdable
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisRateLimiter allows limit hits per window for every key.
func NewRedisRateLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		prefix: guestLimiterKeyPrefix,
		limit:  int64(limit),
		window: window,
	}
}

// Allow records one hit for key and reports whether it is within the limit.
// The window starts at the first hit and is never extended by later ones.
// A counter found without a TTL gets the window set, which only takes
// plain EXPIRE and so works on any Redis version.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.prefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("error updating rate limit counter: %w", err)
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("error reading rate limit window: %w", err)
	}
	if ttl < 0 {
		if err = l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("error setting rate limit window: %w", err)
		}
	}

	return count <= l.limit, nil
}
