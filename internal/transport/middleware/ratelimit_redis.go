package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests per key in fixed one-minute windows shared
// by every server instance pointing at the same Redis.
type RedisLimiter struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisLimiter connects to Redis and verifies the connection.
func NewRedisLimiter(ctx context.Context, addr, password string, db int) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisLimiter{
		client:  client,
		prefix:  "lawdesk:ratelimit:",
		timeout: 250 * time.Millisecond,
	}, nil
}

// Allow increments the key's counter for the current window.
func (rl *RedisLimiter) Allow(ctx context.Context, key string, maxPerMinute int) (bool, error) {
	if maxPerMinute <= 0 {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, rl.timeout)
	defer cancel()

	redisKey := rl.prefix + key
	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis limiter: %w", err)
	}

	return incr.Val() <= int64(maxPerMinute), nil
}

// Close releases the Redis connection pool.
func (rl *RedisLimiter) Close() error {
	return rl.client.Close()
}

// Ping checks the Redis connection; it lets the limiter serve as a health dependency.
func (rl *RedisLimiter) Ping(ctx context.Context) error {
	return rl.client.Ping(ctx).Err()
}
