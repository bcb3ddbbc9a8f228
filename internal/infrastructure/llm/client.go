// Package llm 提供上游文本生成服务的 HTTP 客户端
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"brandflow-ai-api/internal/application/generation"
	"brandflow-ai-api/internal/config"
	apperrors "brandflow-ai-api/pkg/errors"
	"brandflow-ai-api/pkg/metrics"
	"brandflow-ai-api/pkg/tracer"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultTimeout = 60 * time.Second

	// maxErrorBodyLen 错误响应体截断长度，只用于诊断信息
	maxErrorBodyLen = 2048
)

// Client chat-completions 协议的网关客户端
//
// 每次 Complete 恰好发起一次网络调用，不在内部重试；
// 传输层结果按统一分类法归入五类错误之一（见 pkg/errors）。
type Client struct {
	provider   string
	cfg        config.ProviderConfig
	httpClient *http.Client
}

// NewClient 创建网关客户端
func NewClient(provider string, cfg config.ProviderConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		provider:   provider,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// chatRequest chat-completions 请求体
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse chat-completions 响应体（只解码用到的字段）
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete 发送提示词对并返回首个补全的原始文本
//
// 状态码分类：429 -> RateLimited，402 -> QuotaExhausted，
// 其余非 2xx -> ProviderUnavailable（附上游状态与响应体），
// 超时 -> ProviderUnavailable，其它传输故障 -> Unknown。
// 成功但内容为空视为畸形成功，同样归入 ProviderUnavailable。
func (c *Client) Complete(ctx context.Context, prompt generation.PromptPair) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.Complete")
	span.SetAttributes(
		attribute.String("llm.provider", c.provider),
		attribute.String("llm.model", c.cfg.Model),
	)
	defer span.End()

	start := time.Now()
	content, err := c.complete(ctx, prompt)
	duration := time.Since(start)

	status := "success"
	if err != nil {
		status = string(apperrors.AsAppError(err).Kind)
		span.RecordError(err)
	}
	metrics.LLMCallTotal.WithLabelValues(c.provider, c.cfg.Model, status).Inc()
	metrics.LLMCallDuration.WithLabelValues(c.provider, c.cfg.Model).Observe(duration.Seconds())

	return content, err
}

func (c *Client) complete(ctx context.Context, prompt generation.PromptPair) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindUnknown, "failed to encode provider request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindUnknown, "failed to build provider request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apperrors.Wrap(err, apperrors.KindProviderUnavailable, "AI service timed out")
		}
		return "", apperrors.Wrap(err, apperrors.KindUnknown, "AI service request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindUnknown, "failed to read provider response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", classifyStatus(resp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", apperrors.Wrap(err, apperrors.KindProviderUnavailable, "AI service returned a malformed response")
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		// 2xx 但没有可用内容，按畸形成功处理
		return "", apperrors.New(apperrors.KindProviderUnavailable, "AI service returned empty content")
	}

	return parsed.Choices[0].Message.Content, nil
}

// classifyStatus 把上游非 2xx 状态映射到错误分类法
func classifyStatus(status int, body []byte) *apperrors.AppError {
	detail := fmt.Sprintf("upstream status %d: %s", status, truncate(string(body), maxErrorBodyLen))

	switch status {
	case http.StatusTooManyRequests:
		return apperrors.New(apperrors.KindRateLimited, "AI service rate limit reached, please try again later").
			WithDetail(detail)
	case http.StatusPaymentRequired:
		return apperrors.New(apperrors.KindQuotaExhausted, "AI service quota exhausted").
			WithDetail(detail)
	default:
		return apperrors.New(apperrors.KindProviderUnavailable, "AI service is temporarily unavailable").
			WithDetail(detail)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
