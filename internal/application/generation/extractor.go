package generation

import (
	"encoding/json"
	"strings"
)

// rawContentKey 提取失败时兜底结果的字段名
const rawContentKey = "rawContent"

// Extract 从模型的自由文本输出中恢复结构化结果
//
// 模型被要求只输出一个 JSON 对象，但实际可能在前后夹杂散文。
// 算法：截取第一个 '{' 到最后一个 '}' 的区间尝试解析；解析成功则
// 原样信任（不按操作形状二次校验），否则降级为 {"rawContent": 原文}。
// 提取失败不是错误——散文式回答对调用方仍然有用，这里永不返回 error。
func Extract(raw string) map[string]any {
	if span := extractJSONObject(raw); span != "" {
		dec := json.NewDecoder(strings.NewReader(span))
		dec.UseNumber()

		var result map[string]any
		if err := dec.Decode(&result); err == nil && result != nil {
			return result
		}
	}

	return map[string]any{rawContentKey: raw}
}

// IsFallback 判断结果是否为原文兜底形态
func IsFallback(result map[string]any) bool {
	if len(result) != 1 {
		return false
	}
	_, ok := result[rawContentKey]
	return ok
}

// extractJSONObject 截取文本中第一个顶层 JSON 对象的候选区间
//
// 不做花括号配对：第一个 '{' 到最后一个 '}' 已覆盖
// “纯 JSON”“JSON 夹杂散文”两种情况，配不配对交给解析器裁决。
func extractJSONObject(s string) string {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return ""
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
