// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"github.com/gin-gonic/gin"

	apperrors "brandflow-ai-api/pkg/errors"
)

// ValidationErrorResponse 校验失败响应（400）
type ValidationErrorResponse struct {
	Error   string                     `json:"error"`
	Details []apperrors.FieldViolation `json:"details"`
}

// CodedErrorResponse 带错误码的失败响应（429/402）
type CodedErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// InternalErrorResponse 兜底失败响应（500）
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// Success 返回成功响应
func Success(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// InvalidRequest 返回 400 校验失败响应
func InvalidRequest(c *gin.Context, details []apperrors.FieldViolation) {
	if details == nil {
		details = []apperrors.FieldViolation{}
	}
	c.JSON(400, ValidationErrorResponse{
		Error:   "Invalid request",
		Details: details,
	})
}

// FromAppError 按错误类别返回对应的错误信封
//
// 这里是内部错误分类法到对外状态码/错误码的唯一翻译点。
func FromAppError(c *gin.Context, err *apperrors.AppError) {
	switch err.Kind {
	case apperrors.KindValidationFailed:
		InvalidRequest(c, err.Violations)
	case apperrors.KindRateLimited, apperrors.KindQuotaExhausted:
		c.JSON(err.HTTPStatus, CodedErrorResponse{
			Error: err.Message,
			Code:  err.Kind.WireCode(),
		})
	default:
		c.JSON(err.HTTPStatus, InternalErrorResponse{
			Error:   err.Message,
			Success: false,
		})
	}
}
