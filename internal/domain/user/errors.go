package user

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrContactDuplicate 联系方式已被其他用户使用
	ErrContactDuplicate = apperrors.New(apperrors.ErrCodeContactDuplicate, "该联系方式已注册")

	// ErrMissingFields 必填字段缺失
	ErrMissingFields = apperrors.New(apperrors.ErrCodeInvalidParams, "姓名和联系方式不能为空")
)
