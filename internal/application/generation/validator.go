package generation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "brandflow-ai-api/pkg/errors"
)

// 字段长度上限
const (
	maxTopicLen           = 500
	maxOriginalContentLen = 10000
	maxContextLen         = 5000
	maxPlatformLen        = 50
	maxToneLen            = 50
	maxTargetLanguageLen  = 100
)

// ValidateRequest 校验生成请求，返回 nil 或带字段级错误明细的 ValidationFailed
//
// 刻意不按操作强制必填字段：schema 对五种操作保持统一宽松，
// 操作特定字段的缺失由对应策略降级处理。收紧这里的规则前必须
// 同步调整所有策略，否则会拒绝策略本可以处理的请求。
func ValidateRequest(req *Request) *apperrors.AppError {
	if req == nil {
		return apperrors.New(apperrors.KindValidationFailed, "Invalid request").
			WithViolations([]apperrors.FieldViolation{{Field: "body", Message: "request body is required"}})
	}

	var violations []apperrors.FieldViolation

	if !req.Operation.Valid() {
		violations = append(violations, apperrors.FieldViolation{
			Field:   "type",
			Message: fmt.Sprintf("type must be one of: %s", operationList()),
		})
	}

	if req.BrandID != "" {
		if _, err := uuid.Parse(req.BrandID); err != nil {
			violations = append(violations, apperrors.FieldViolation{
				Field:   "brandId",
				Message: "brandId must be a valid UUID",
			})
		}
	}

	violations = appendLengthViolation(violations, "topic", req.Topic, maxTopicLen)
	violations = appendLengthViolation(violations, "originalContent", req.OriginalContent, maxOriginalContentLen)
	violations = appendLengthViolation(violations, "context", req.Context, maxContextLen)
	violations = appendLengthViolation(violations, "platform", req.Platform, maxPlatformLen)
	violations = appendLengthViolation(violations, "tone", req.Tone, maxToneLen)
	violations = appendLengthViolation(violations, "targetLanguage", req.TargetLanguage, maxTargetLanguageLen)

	if len(violations) > 0 {
		return apperrors.New(apperrors.KindValidationFailed, "Invalid request").
			WithViolations(violations)
	}
	return nil
}

// appendLengthViolation 超长时追加一条字段错误
func appendLengthViolation(violations []apperrors.FieldViolation, field, value string, max int) []apperrors.FieldViolation {
	if len(value) > max {
		violations = append(violations, apperrors.FieldViolation{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, max),
		})
	}
	return violations
}

func operationList() string {
	parts := make([]string, 0, len(Operations))
	for _, op := range Operations {
		parts = append(parts, string(op))
	}
	return strings.Join(parts, ", ")
}
