package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GTDGit/gtd_bi/internal/config"
)

const keyPrefix = "bi:ratelimit:"

// RedisClient wraps the go-redis client with the counters the limiter needs.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client from config.
func NewRedisClient(cfg *config.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisClient{client: client}, nil
}

// Incr increments the counter stored at key.
func (r *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

// Expire sets a TTL on key.
func (r *RedisClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

// Close closes the Redis connection.
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// RedisLimiter is a fixed-window counter shared by every API instance.
type RedisLimiter struct {
	redis  *RedisClient
	limit  int
	window time.Duration
}

// NewRedisLimiter allows limit requests per key in each window.
func NewRedisLimiter(client *RedisClient, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{redis: client, limit: limit, window: window}
}

// Allow counts the request and reports whether it is within the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := keyPrefix + key
	n, err := l.redis.Incr(ctx, k)
	if err != nil {
		return false, fmt.Errorf("increment %s: %w", k, err)
	}
	// First hit opens the window.
	if n == 1 {
		if err := l.redis.Expire(ctx, k, l.window); err != nil {
			return false, fmt.Errorf("expire %s: %w", k, err)
		}
	}
	return n <= int64(l.limit), nil
}
