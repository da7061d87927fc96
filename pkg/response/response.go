package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Response 统一成功响应
// Code=0表示成功，HTTP状态码由调用方决定（200/201）
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse 统一失败响应
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// Success 成功响应（200）
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 5xx错误会把底层错误信息一并返回，并记录日志
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	msg := appErr.Message
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Int("code", appErr.Code),
			zap.Error(appErr),
		)
		if appErr.Err != nil {
			msg = msg + ": " + appErr.Err.Error()
		}
	}

	c.JSON(status, ErrorResponse{
		Code:  appErr.Code,
		Error: msg,
	})
}

// AbortWithError 中间件使用，终止后续处理
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
