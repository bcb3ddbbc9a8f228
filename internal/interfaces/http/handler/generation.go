// Package handler 提供 HTTP 请求处理器
package handler

import (
	"brandflow-ai-api/internal/application/generation"
	"brandflow-ai-api/internal/interfaces/http/dto"
	apperrors "brandflow-ai-api/pkg/errors"
	"brandflow-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// GenerationHandler 内容生成处理器
type GenerationHandler struct {
	dispatcher *generation.Dispatcher
}

// NewGenerationHandler 创建内容生成处理器
func NewGenerationHandler(dispatcher *generation.Dispatcher) *GenerationHandler {
	return &GenerationHandler{
		dispatcher: dispatcher,
	}
}

// Generate 生成内容
// @Summary 生成内容
// @Description 按操作类型（copy/variants/ideas/improve/translate）生成营销内容
// @Tags Content
// @Accept json
// @Produce json
// @Param body body dto.GenerateContentRequest true "生成请求"
// @Success 200 {object} dto.GenerateContentResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 402 {object} dto.CodedErrorResponse
// @Failure 429 {object} dto.CodedErrorResponse
// @Failure 500 {object} dto.InternalErrorResponse
// @Router /v1/content/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.InvalidRequest(c, []apperrors.FieldViolation{
			{Field: "body", Message: "request body must be a valid JSON object"},
		})
		return
	}

	outcome, err := h.dispatcher.Dispatch(ctx, req.ToGenerationRequest())
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.Kind != apperrors.KindValidationFailed {
			logger.Error(ctx, "content generation failed", appErr,
				"operation", req.Type,
				"kind", string(appErr.Kind),
			)
		}
		dto.FromAppError(c, appErr)
		return
	}

	dto.Success(c, 200, dto.ToGenerateContentResponse(outcome))
}
