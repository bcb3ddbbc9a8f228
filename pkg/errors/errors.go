// Package errors 提供统一的错误定义
package errors

import (
	"fmt"
	"net/http"
)

// Kind 错误类别
//
// 生成请求的失败最终都会归入这五类之一，
// 调度器据此把内部错误翻译成对外的 HTTP 状态码和错误码。
type Kind string

// 预定义错误类别
const (
	// KindValidationFailed 请求参数校验失败，调用方修正后可重试
	KindValidationFailed Kind = "VALIDATION_FAILED"
	// KindRateLimited 上游模型服务限流，调用方应退避后重试
	KindRateLimited Kind = "RATE_LIMITED"
	// KindQuotaExhausted 上游模型服务额度耗尽，需要人工介入
	KindQuotaExhausted Kind = "QUOTA_EXHAUSTED"
	// KindProviderUnavailable 上游模型服务其它非成功响应（含超时、空内容）
	KindProviderUnavailable Kind = "PROVIDER_UNAVAILABLE"
	// KindUnknown 流水线中未预期的异常
	KindUnknown Kind = "UNKNOWN"
)

// FieldViolation 字段级校验错误
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError 应用错误
type AppError struct {
	Kind       Kind             `json:"kind"`
	Message    string           `json:"message"`
	Detail     string           `json:"detail,omitempty"`
	HTTPStatus int              `json:"-"`
	Violations []FieldViolation `json:"violations,omitempty"`
	Err        error            `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail 添加详细信息
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

// WithError 添加底层错误
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// WithViolations 添加字段级校验错误
func (e *AppError) WithViolations(violations []FieldViolation) *AppError {
	e.Violations = violations
	return e
}

// New 创建新的应用错误
func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: kindToHTTPStatus(kind),
	}
}

// Wrap 包装错误
func Wrap(err error, kind Kind, message string) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: kindToHTTPStatus(kind),
		Err:        err,
	}
}

// kindToHTTPStatus 错误类别转 HTTP 状态码
//
// 注意：ProviderUnavailable 对外表现为 500 而非 503，
// 调用方不需要区分本服务故障和上游故障。
func kindToHTTPStatus(kind Kind) int {
	switch kind {
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindQuotaExhausted:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// WireCode 返回错误类别对应的对外错误码，无对应码时返回空串
func (k Kind) WireCode() string {
	switch k {
	case KindRateLimited:
		return "RATE_LIMIT"
	case KindQuotaExhausted:
		return "PAYMENT_REQUIRED"
	default:
		return ""
	}
}

// 预定义错误
var (
	ErrInvalidRequest      = New(KindValidationFailed, "Invalid request")
	ErrRateLimited         = New(KindRateLimited, "AI service rate limit reached, please try again later")
	ErrQuotaExhausted      = New(KindQuotaExhausted, "AI service quota exhausted")
	ErrProviderUnavailable = New(KindProviderUnavailable, "AI service is temporarily unavailable")
	ErrUnknown             = New(KindUnknown, "internal server error")
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError 将任意错误转换为 AppError
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, KindUnknown, "internal server error")
}
