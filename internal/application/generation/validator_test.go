package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "brandflow-ai-api/pkg/errors"
)

func TestValidateRequest_ValidOperations(t *testing.T) {
	// 五种操作的最小合法请求：只有 type
	for _, op := range Operations {
		t.Run(string(op), func(t *testing.T) {
			err := ValidateRequest(&Request{Operation: op})
			assert.Nil(t, err)
		})
	}
}

func TestValidateRequest_NilRequest(t *testing.T) {
	err := ValidateRequest(nil)
	require.NotNil(t, err)
	assert.Equal(t, apperrors.KindValidationFailed, err.Kind)
	require.Len(t, err.Violations, 1)
	assert.Equal(t, "body", err.Violations[0].Field)
}

func TestValidateRequest_UnknownOperation(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
	}{
		{"空操作", Operation("")},
		{"未知操作", Operation("summarize")},
		{"大小写敏感", Operation("Copy")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(&Request{Operation: tt.op})
			require.NotNil(t, err)
			assert.Equal(t, apperrors.KindValidationFailed, err.Kind)
			require.Len(t, err.Violations, 1)
			assert.Equal(t, "type", err.Violations[0].Field)
			assert.Contains(t, err.Violations[0].Message, "copy, variants, ideas, improve, translate")
		})
	}
}

func TestValidateRequest_BrandID(t *testing.T) {
	t.Run("合法 UUID", func(t *testing.T) {
		err := ValidateRequest(&Request{
			Operation: OperationCopy,
			BrandID:   "3f2c1a90-7b4e-4f6d-9c2a-8e5b1d0f7a63",
		})
		assert.Nil(t, err)
	})

	t.Run("非 UUID", func(t *testing.T) {
		err := ValidateRequest(&Request{
			Operation: OperationCopy,
			BrandID:   "brand-123",
		})
		require.NotNil(t, err)
		require.Len(t, err.Violations, 1)
		assert.Equal(t, "brandId", err.Violations[0].Field)
	})

	t.Run("空 brandId 视为未提供", func(t *testing.T) {
		err := ValidateRequest(&Request{Operation: OperationCopy, BrandID: ""})
		assert.Nil(t, err)
	})
}

func TestValidateRequest_FieldLengths(t *testing.T) {
	tests := []struct {
		name  string
		req   *Request
		field string
	}{
		{
			name:  "topic 超长",
			req:   &Request{Operation: OperationIdeas, Topic: strings.Repeat("t", maxTopicLen+1)},
			field: "topic",
		},
		{
			name:  "originalContent 超长",
			req:   &Request{Operation: OperationImprove, OriginalContent: strings.Repeat("c", maxOriginalContentLen+1)},
			field: "originalContent",
		},
		{
			name:  "context 超长",
			req:   &Request{Operation: OperationCopy, Context: strings.Repeat("x", maxContextLen+1)},
			field: "context",
		},
		{
			name:  "platform 超长",
			req:   &Request{Operation: OperationCopy, Platform: strings.Repeat("p", maxPlatformLen+1)},
			field: "platform",
		},
		{
			name:  "tone 超长",
			req:   &Request{Operation: OperationCopy, Tone: strings.Repeat("v", maxToneLen+1)},
			field: "tone",
		},
		{
			name:  "targetLanguage 超长",
			req:   &Request{Operation: OperationTranslate, TargetLanguage: strings.Repeat("l", maxTargetLanguageLen+1)},
			field: "targetLanguage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			require.NotNil(t, err)
			require.Len(t, err.Violations, 1)
			assert.Equal(t, tt.field, err.Violations[0].Field)
		})
	}

	t.Run("恰好达到上限不算超长", func(t *testing.T) {
		err := ValidateRequest(&Request{
			Operation: OperationCopy,
			Topic:     strings.Repeat("t", maxTopicLen),
		})
		assert.Nil(t, err)
	})
}

func TestValidateRequest_AccumulatesViolations(t *testing.T) {
	// 一次返回全部问题，而不是在第一个错误处短路
	err := ValidateRequest(&Request{
		Operation: Operation("bogus"),
		BrandID:   "not-a-uuid",
		Topic:     strings.Repeat("t", maxTopicLen+1),
	})
	require.NotNil(t, err)
	assert.Equal(t, apperrors.KindValidationFailed, err.Kind)
	assert.Equal(t, "Invalid request", err.Message)
	require.Len(t, err.Violations, 3)

	fields := make([]string, 0, len(err.Violations))
	for _, v := range err.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"type", "brandId", "topic"}, fields)
}
