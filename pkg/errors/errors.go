package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于区分错误类型（存储错误、资源不存在、参数错误）
// 2. Message是用户友好的提示信息，会展示在错误页面上
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
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

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapDB 包装存储层错误（StorageError）
// 所有仓储实现遇到GORM错误都通过它转换，上层统一按50001处理
func WrapDB(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Err:     err,
	}
}

// NotImplemented 功能未实现（如"NOT IMPLEMENTED: Book create GET"）
func NotImplemented(what string) *AppError {
	return New(ErrCodeNotImplemented, ErrNotImplemented.Message+": "+what)
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、资源不存在、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、功能未实现）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误

	// 功能未实现（50100）
	ErrCodeNotImplemented = 50100

	// 资源错误（40400-40499）
	ErrCodeNotFound             = 40400 // 资源不存在(通用)
	ErrCodeAuthorNotFound       = 40401 // 作者不存在
	ErrCodeBookNotFound         = 40402 // 图书不存在
	ErrCodeGenreNotFound        = 40403 // 分类不存在
	ErrCodeBookInstanceNotFound = 40404 // 馆藏副本不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError  = 40000 // 业务错误(通用)
	ErrCodeAuthorHasBooks = 40010 // 作者仍有关联图书，不能删除
	ErrCodeGenreDuplicate = 40011 // 分类名已存在

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrNotFound       = New(ErrCodeNotFound, "Not Found")
	ErrNotImplemented = New(ErrCodeNotImplemented, "NOT IMPLEMENTED")
	ErrInvalidParams  = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError      = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// IsNotFound 判断是否为资源不存在错误（404族）
func IsNotFound(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code >= ErrCodeNotFound && appErr.Code < ErrCodeNotFound+100
}

// IsStorage 判断是否为存储层错误
func IsStorage(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeDatabaseError
}

// IsNotImplemented 判断是否为"未实现"错误
func IsNotImplemented(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotImplemented
}

// HTTPStatus 错误码 → HTTP状态码
// 只有HTML页面需要真实的状态码，JSON接口仍然沿用业务码
func HTTPStatus(err error) int {
	appErr := GetAppError(err)
	switch {
	case IsNotFound(appErr):
		return http.StatusNotFound
	case appErr.Code == ErrCodeNotImplemented:
		return http.StatusNotImplemented
	case appErr.Code == ErrCodeAuthorHasBooks:
		return http.StatusConflict
	case appErr.Code >= ErrCodeInvalidParams && appErr.Code < ErrCodeInvalidParams+100:
		return http.StatusBadRequest
	case appErr.Code >= ErrCodeBusinessError && appErr.Code < ErrCodeBusinessError+100:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
