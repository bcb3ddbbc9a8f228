package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandflow-ai-api/internal/application/generation"
	"brandflow-ai-api/internal/config"
	apperrors "brandflow-ai-api/pkg/errors"
)

func newTestClient(baseURL string) *Client {
	return NewClient("openai", config.ProviderConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "gpt-4o-mini",
		MaxTokens:   2000,
		Temperature: 0.8,
		Timeout:     5 * time.Second,
	})
}

func chatReply(content string) string {
	return `{"choices": [{"message": {"content": ` + mustJSONString(content) + `}}]}`
}

func mustJSONString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

var testPrompt = generation.PromptPair{
	System: "You are a content strategist.",
	User:   "Write a post about spring sales.",
}

func TestClient_Complete_Success(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply(`{"copy": {"hook": "Stop scrolling."}}`)))
	}))
	defer srv.Close()

	content, err := newTestClient(srv.URL).Complete(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, `{"copy": {"hook": "Stop scrolling."}}`, content)

	// 提示词对按 system/user 顺序映射为两条消息
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, testPrompt.System, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, testPrompt.User, captured.Messages[1].Content)
	assert.Equal(t, 2000, captured.MaxTokens)
	assert.InDelta(t, 0.8, captured.Temperature, 0.0001)
}

func TestClient_Complete_StatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   apperrors.Kind
		wantMsg    string
		wantDetail string
	}{
		{
			name:       "429 限流",
			status:     http.StatusTooManyRequests,
			body:       `{"error": {"message": "rate limited", "type": "rate_limit_exceeded"}}`,
			wantKind:   apperrors.KindRateLimited,
			wantMsg:    "AI service rate limit reached, please try again later",
			wantDetail: "upstream status 429",
		},
		{
			name:       "402 额度耗尽",
			status:     http.StatusPaymentRequired,
			body:       `{"error": {"message": "insufficient quota", "type": "insufficient_quota"}}`,
			wantKind:   apperrors.KindQuotaExhausted,
			wantMsg:    "AI service quota exhausted",
			wantDetail: "upstream status 402",
		},
		{
			name:       "500 上游故障",
			status:     http.StatusInternalServerError,
			body:       "upstream exploded",
			wantKind:   apperrors.KindProviderUnavailable,
			wantMsg:    "AI service is temporarily unavailable",
			wantDetail: "upstream status 500",
		},
		{
			name:       "401 也归入上游不可用",
			status:     http.StatusUnauthorized,
			body:       `{"error": {"message": "bad key"}}`,
			wantKind:   apperrors.KindProviderUnavailable,
			wantMsg:    "AI service is temporarily unavailable",
			wantDetail: "upstream status 401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			content, err := newTestClient(srv.URL).Complete(context.Background(), testPrompt)

			assert.Empty(t, content)
			require.Error(t, err)
			appErr := apperrors.AsAppError(err)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Contains(t, appErr.Detail, tt.wantDetail)
		})
	}
}

func TestClient_Complete_MalformedSuccess(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"响应体不是 JSON", "definitely not json"},
		{"choices 为空", `{"choices": []}`},
		{"content 为空白", chatReply("   \n  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Complete(context.Background(), testPrompt)

			// 2xx 但没有可用内容视为畸形成功
			require.Error(t, err)
			assert.Equal(t, apperrors.KindProviderUnavailable, apperrors.AsAppError(err).Kind)
		})
	}
}

func TestClient_Complete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv.URL).Complete(ctx, testPrompt)

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.KindProviderUnavailable, appErr.Kind)
	assert.Equal(t, "AI service timed out", appErr.Message)
}

func TestClient_Complete_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 立刻关闭，制造连接拒绝

	_, err := newTestClient(srv.URL).Complete(context.Background(), testPrompt)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnknown, apperrors.AsAppError(err).Kind)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("openai", config.ProviderConfig{APIKey: "k"})

	assert.Equal(t, defaultBaseURL, c.cfg.BaseURL)
	assert.Equal(t, defaultTimeout, c.cfg.Timeout)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}
