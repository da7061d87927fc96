package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 请求ID响应头,上游已带时沿用
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID 为每个请求分配ID,写入Context和响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID 从Context获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
