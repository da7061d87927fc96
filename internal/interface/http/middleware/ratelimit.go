package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/ratelimit"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// RateLimit 按客户端IP限流,超限返回429
// 限流后端出错时放行,只记日志
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	backend := limiter.Backend()
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			zap.L().Warn("限流检查失败,放行", zap.String("backend", backend), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			metrics.IncCounterVec(metrics.RateLimitedTotal, map[string]string{"backend": backend})
			c.Header("Retry-After", "1")
			response.AbortWithError(c, apperrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
