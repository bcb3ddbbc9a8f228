// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"brandflow-ai-api/internal/application/generation"
)

// GenerateContentRequest 内容生成请求体
//
// 对五种操作统一宽松：这里只做 JSON 解码，字段约束交给应用层校验器，
// 以便产出字段级错误明细。
type GenerateContentRequest struct {
	Type            string `json:"type"`
	BrandID         string `json:"brandId"`
	Platform        string `json:"platform"`
	Topic           string `json:"topic"`
	Tone            string `json:"tone"`
	OriginalContent string `json:"originalContent"`
	TargetLanguage  string `json:"targetLanguage"`
	Context         string `json:"context"`
}

// ToGenerationRequest 转换为应用层请求
func (r *GenerateContentRequest) ToGenerationRequest() *generation.Request {
	return &generation.Request{
		Operation:       generation.Operation(r.Type),
		BrandID:         r.BrandID,
		Platform:        r.Platform,
		Topic:           r.Topic,
		Tone:            r.Tone,
		OriginalContent: r.OriginalContent,
		TargetLanguage:  r.TargetLanguage,
		Context:         r.Context,
	}
}

// GenerateContentResponse 内容生成成功信封
type GenerateContentResponse struct {
	Success     bool           `json:"success"`
	Type        string         `json:"type"`
	Result      map[string]any `json:"result"`
	GeneratedAt string         `json:"generatedAt"`
}

// ToGenerateContentResponse 从调度终态构建成功信封
func ToGenerateContentResponse(outcome *generation.Outcome) *GenerateContentResponse {
	return &GenerateContentResponse{
		Success:     true,
		Type:        string(outcome.Operation),
		Result:      outcome.Result,
		GeneratedAt: outcome.GeneratedAt.Format(time.RFC3339),
	}
}
