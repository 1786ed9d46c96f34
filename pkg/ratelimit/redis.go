package ratelimit

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter 基于 Redis 的限流器，多实例部署时使用
//
// SETNX + TTL 天然满足原子的检查并占用语义，过期由 Redis 自动完成
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
}

// NewRedisLimiter ...
func NewRedisLimiter(client *redis.Client, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, window: window}
}

// Allow ...
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, 1, l.window).Result()
	if err != nil {
		return false, errors.Wrap(err, "rate limit check")
	}
	return ok, nil
}
