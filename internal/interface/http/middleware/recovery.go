package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// Recovery 捕获handler中的panic,返回500并记录堆栈
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				c.Header("Connection", "close")
				response.AbortWithError(c, apperrors.Wrap(fmt.Errorf("%v", r), "系统内部错误"))
			}
		}()
		c.Next()
	}
}
