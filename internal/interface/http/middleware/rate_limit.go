package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// Limiter 限流器（persistence/redis.RateLimiter）
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit 按客户端IP限流
// 设计说明：
// 1. key = scope:客户端IP，不同接口的计数互不影响
// 2. 超过限制返回429
// 3. 限流器故障时放行（fail-open），只记录日志
// limiter为nil时不限流
func RateLimit(limiter Limiter, scope string, logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			logger.Warn().Err(err).Str("scope", scope).Msg("限流器不可用，放行请求")
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, apperrors.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
