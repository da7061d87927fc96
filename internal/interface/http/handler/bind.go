package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// bind 按Content-Type绑定请求体并校验binding tag
// 失败时已写出400响应,调用方直接return
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		bindFailed(c, err)
		return false
	}
	return true
}

// bindURI 绑定路径参数
func bindURI(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindUri(req); err != nil {
		response.Error(c, apperrors.ErrInvalidParams.WithMessage("路径参数错误: %s", err.Error()))
		return false
	}
	return true
}

func bindFailed(c *gin.Context, err error) {
	response.Error(c, apperrors.ErrBindError.WithMessage("参数错误: %s", err.Error()))
}
