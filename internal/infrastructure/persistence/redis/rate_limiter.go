package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter 固定窗口限流
//
// key首次INCR时设置过期时间，窗口内计数超过limit即拒绝
// Key：bookstore:rate_limit:{scope}:{client}
type RateLimiter struct {
	client *redis.Client
	limit  int64
	period time.Duration
}

// NewRateLimiter 创建限流器
func NewRateLimiter(client *redis.Client, limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  int64(limit),
		period: period,
	}
}

// Allow 计数并判断是否允许本次请求
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "bookstore:rate_limit:" + key

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, l.period)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("限流计数失败: %w", err)
	}

	return incr.Val() <= l.limit, nil
}
