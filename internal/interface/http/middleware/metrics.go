package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/pkg/metrics"
)

// Metrics 记录请求数、耗时和并发数
// path取路由模板(/books/:id),未匹配的路由统一记为unmatched,避免标签爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		defer metrics.DecGauge(metrics.HTTPRequestsInProgress)

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
			"method": method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}
