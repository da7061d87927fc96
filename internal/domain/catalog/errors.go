package catalog

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrPublisherNotFound 出版社不存在(引用错误)
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodeUnknownPublisher, "出版社不存在")

	// ErrBookUnavailable 图书已下架或无可借册数
	ErrBookUnavailable = apperrors.New(apperrors.ErrCodeBookUnavailable, "图书不可借")

	// ErrBookHasLoans 图书存在借阅记录,不能删除
	ErrBookHasLoans = apperrors.New(apperrors.ErrCodeBookHasLoans, "图书存在借阅记录,不能删除")

	// ErrMissingFields 必填字段缺失
	ErrMissingFields = apperrors.New(apperrors.ErrCodeInvalidParams, "缺少必填字段")
)

// ErrSeedMissing 建立关联时引用的种子记录不存在
var ErrSeedMissing = apperrors.New(apperrors.ErrCodeSeedDataMissing, "种子数据缺失,请先执行populate_db")
