// Package generation 实现内容生成请求的调度流水线：
// 校验 -> 品牌上下文解析 -> 提示词构建 -> 模型调用 -> 结构化结果提取。
package generation

// Operation 内容生成操作类型
type Operation string

// 支持的五种操作
const (
	OperationCopy      Operation = "copy"
	OperationVariants  Operation = "variants"
	OperationIdeas     Operation = "ideas"
	OperationImprove   Operation = "improve"
	OperationTranslate Operation = "translate"
)

// Operations 全部合法操作，按文档顺序排列
var Operations = []Operation{
	OperationCopy,
	OperationVariants,
	OperationIdeas,
	OperationImprove,
	OperationTranslate,
}

// Valid 检查操作是否为已知字面量
func (o Operation) Valid() bool {
	switch o {
	case OperationCopy, OperationVariants, OperationIdeas, OperationImprove, OperationTranslate:
		return true
	default:
		return false
	}
}

// Request 内容生成请求
//
// 字段对所有操作统一宽松：不按操作强制必填（见 ValidateRequest），
// 缺失的操作特定字段由各策略兜底处理。
type Request struct {
	Operation       Operation `json:"type"`
	BrandID         string    `json:"brandId,omitempty"`
	Platform        string    `json:"platform,omitempty"`
	Topic           string    `json:"topic,omitempty"`
	Tone            string    `json:"tone,omitempty"`
	OriginalContent string    `json:"originalContent,omitempty"`
	TargetLanguage  string    `json:"targetLanguage,omitempty"`
	Context         string    `json:"context,omitempty"`
}

// PromptPair 系统/用户提示词对，构建后不可变，不做持久化
type PromptPair struct {
	System string
	User   string
}
