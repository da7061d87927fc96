package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/pkg/tracing"
)

const slowRequestThreshold = 3 * time.Second

// Logger 请求日志
// 不记录请求体
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("HTTP请求", fields...)
		case latency > slowRequestThreshold:
			logger.Warn("慢请求", fields...)
		case status >= 400:
			logger.Warn("HTTP请求", fields...)
		default:
			logger.Info("HTTP请求", fields...)
		}
	}
}
