package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误类别，决定调用方如何处理
type Kind string

const (
	KindInternal         Kind = "internal"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindInvalidState     Kind = "invalid_state"
	KindUnavailable      Kind = "unavailable"
	KindInvalidReference Kind = "invalid_reference"
	KindStore            Kind = "store_error"
	KindSchema           Kind = "schema_error"
	KindRateLimited      Kind = "rate_limited"
)

// AppError 自定义应用错误
// Code 前三位即HTTP状态码（40402 → 404）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 底层错误
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 错误码相同即视为同一错误，WithMessage生成的副本仍能匹配预定义错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Kind 返回错误类别
func (e *AppError) Kind() Kind {
	if k, ok := codeKinds[e.Code]; ok {
		return k
	}
	switch e.Code / 100 {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadRequest:
		return KindInvalidState
	case http.StatusTooManyRequests:
		return KindRateLimited
	}
	return KindInternal
}

// HTTPStatus 由错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if http.StatusText(status) == "" || status < 400 {
		return http.StatusInternalServerError
	}
	return status
}

// WithMessage 复制错误并替换提示信息，错误码不变
func (e *AppError) WithMessage(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: fmt.Sprintf(format, args...),
		Err:     e.Err,
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如网络错误），归为内部错误
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// WrapCode 以指定错误码包装底层错误
func WrapCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Store 包装数据库错误
func Store(err error, op string) *AppError {
	return WrapCode(err, ErrCodeDatabaseError, op)
}

// =========================================
// 错误码定义
// =========================================
// 规范：前三位为HTTP状态码，后两位区分具体错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeSchemaError   = 50002 // 建表失败
	ErrCodeRedisError    = 50003 // Redis错误
	ErrCodeMQError       = 50004 // 消息队列错误

	// 请求与状态错误（40000-40099）
	ErrCodeInvalidParams    = 40000 // 参数错误
	ErrCodeBindError        = 40001 // 参数绑定失败
	ErrCodeInvalidState     = 40002 // 状态不允许此操作
	ErrCodeEmptyCart        = 40003 // 购物车为空
	ErrCodeInvalidReference = 40010 // 引用的记录不存在
	ErrCodeUnknownPublisher = 40011 // 出版社不存在
	ErrCodeUnavailable      = 40020 // 资源不可用
	ErrCodeBookUnavailable  = 40021 // 图书不可借
	ErrCodeSeedDataMissing  = 40030 // 种子数据缺失

	// 资源错误（40400-40499）
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound     = 40401 // 用户不存在
	ErrCodeBookNotFound     = 40402 // 图书不存在
	ErrCodeCartNotFound     = 40403 // 购物车不存在
	ErrCodeCartItemNotFound = 40404 // 购物车中无此书

	// 冲突（40900-40999）
	ErrCodeConflict         = 40900 // 重复记录(通用)
	ErrCodeContactDuplicate = 40901 // 联系方式已被注册
	ErrCodeCartExists       = 40902 // 用户已有购物车
	ErrCodeItemInCart       = 40903 // 图书已在购物车中
	ErrCodeBookHasLoans     = 40904 // 图书存在借阅记录

	// 限流（42900-42999）
	ErrCodeTooManyRequests = 42900
)

var codeKinds = map[int]Kind{
	ErrCodeDatabaseError:    KindStore,
	ErrCodeSchemaError:      KindSchema,
	ErrCodeInvalidReference: KindInvalidReference,
	ErrCodeUnknownPublisher: KindInvalidReference,
	ErrCodeUnavailable:      KindUnavailable,
	ErrCodeBookUnavailable:  KindUnavailable,
}

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal        = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError   = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError      = New(ErrCodeRedisError, "缓存服务错误")
	ErrInvalidParams   = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError       = New(ErrCodeBindError, "参数格式错误")
	ErrNotFound        = New(ErrCodeNotFound, "资源不存在")
	ErrConflict        = New(ErrCodeConflict, "记录已存在")
	ErrTooManyRequests = New(ErrCodeTooManyRequests, "请求过于频繁")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// KindOf 返回任意错误的类别，nil返回空串
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return GetAppError(err).Kind()
}

// HTTPStatus 返回任意错误对应的HTTP状态码
func HTTPStatus(err error) int {
	return GetAppError(err).HTTPStatus()
}
