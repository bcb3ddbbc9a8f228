package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("BF_TEST_SET", "actual-value")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "已定义变量被替换",
			input: "api_key: ${BF_TEST_SET}",
			want:  "api_key: actual-value",
		},
		{
			name:  "已定义变量优先于默认值",
			input: "api_key: ${BF_TEST_SET:fallback}",
			want:  "api_key: actual-value",
		},
		{
			name:  "未定义变量使用默认值",
			input: "host: ${BF_TEST_UNSET:localhost}",
			want:  "host: localhost",
		},
		{
			name:  "空默认值展开为空串",
			input: "password: ${BF_TEST_UNSET:}",
			want:  "password: ",
		},
		{
			name:  "无默认值的未定义变量原样保留",
			input: "secret: ${BF_TEST_UNSET}",
			want:  "secret: ${BF_TEST_UNSET}",
		},
		{
			name:  "默认值可包含冒号",
			input: "endpoint: ${BF_TEST_UNSET:localhost:4317}",
			want:  "endpoint: localhost:4317",
		},
		{
			name:  "一行多个占位符",
			input: "dsn: ${BF_TEST_SET}@${BF_TEST_UNSET:localhost}",
			want:  "dsn: actual-value@localhost",
		},
		{
			name:  "普通文本不受影响",
			input: "name: brandflow-ai-api",
			want:  "name: brandflow-ai-api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnv(tt.input))
		})
	}
}

func TestConfig_DefaultProviderConfig(t *testing.T) {
	t.Run("命中默认提供商", func(t *testing.T) {
		cfg := &Config{
			LLM: LLMConfig{
				DefaultProvider: "openai",
				Providers: map[string]ProviderConfig{
					"openai": {APIKey: "k", Model: "gpt-4o-mini"},
				},
			},
		}

		name, pc, ok := cfg.LLM.DefaultProviderConfig()
		assert.True(t, ok)
		assert.Equal(t, "openai", name)
		assert.Equal(t, "gpt-4o-mini", pc.Model)
	})

	t.Run("默认提供商未配置", func(t *testing.T) {
		cfg := &Config{
			LLM: LLMConfig{
				DefaultProvider: "openai",
				Providers:       map[string]ProviderConfig{},
			},
		}

		_, _, ok := cfg.LLM.DefaultProviderConfig()
		assert.False(t, ok)
	})
}
