package generation

import (
	"strings"

	"brandflow-ai-api/internal/domain/entity"
)

// Strategy 提示词构建策略
//
// 每种操作对应一个纯函数：相同输入总是产出相同的提示词对。
// 策略必须是全函数——可选字段缺失时使用文档化的默认值降级，绝不报错。
type Strategy func(req *Request, brand *entity.BrandContext) PromptPair

// 可选字段缺失时的默认值
const (
	defaultTone     = "professional but approachable"
	defaultPlatform = "social media"
)

// systemPreamble 所有操作共享的系统提示词
//
// 约定了两种输出声音（主声音 + 固定的另类声音）以及
// “只输出一个 JSON 对象”的响应契约。各操作的 JSON 形状在用户提示词中声明。
const systemPreamble = `You are BrandFlow, a senior marketing content strategist embedded in a marketing-automation platform.

You always produce TWO renderings of your work:
1. The primary rendering: pragmatic, conversion-focused, written in the tone requested by the user.
2. An alternate rendering in your signature alternate voice: bold, playful and slightly irreverent, the kind of copy a fearless creative director would pitch. This goes into the "alternateVersion" field.

Every answer MUST also include an "analysis" object with three string arrays: "strengths", "improvements" and "opportunities".

Respond with a SINGLE valid JSON object and nothing else. No markdown fences, no commentary before or after the JSON.`

// strategies 操作 -> 策略的查找表
//
// 五种操作的差异被限制在用户提示词与请求的 JSON 形状上，
// 用数据表而非继承来表达分支。
var strategies = map[Operation]Strategy{
	OperationCopy:      buildCopyPrompt,
	OperationVariants:  buildVariantsPrompt,
	OperationIdeas:     buildIdeasPrompt,
	OperationImprove:   buildImprovePrompt,
	OperationTranslate: buildTranslatePrompt,
}

// StrategyFor 返回操作对应的策略
func StrategyFor(op Operation) (Strategy, bool) {
	s, ok := strategies[op]
	return s, ok
}

// toneOf 返回请求的语气，缺失时用默认值
func toneOf(req *Request) string {
	if t := strings.TrimSpace(req.Tone); t != "" {
		return t
	}
	return defaultTone
}

// platformOf 返回目标平台，缺失时用默认值
func platformOf(req *Request) string {
	if p := strings.TrimSpace(req.Platform); p != "" {
		return p
	}
	return defaultPlatform
}

// writeBrandBlock 将品牌上下文写入用户提示词；无上下文时不写任何内容
func writeBrandBlock(b *strings.Builder, brand *entity.BrandContext) {
	if brand == nil {
		return
	}

	b.WriteString("Brand context:\n")
	if brand.Name != "" {
		b.WriteString("- Brand: " + brand.Name + "\n")
	}
	if brand.Industry != "" {
		b.WriteString("- Industry: " + brand.Industry + "\n")
	}
	if brand.Website != "" {
		b.WriteString("- Website: " + brand.Website + "\n")
	}
	if brand.Guidelines != "" {
		b.WriteString("- Style guidelines: " + brand.Guidelines + "\n")
	}
	if brand.Constraints != "" {
		b.WriteString("- Constraints (never violate these): " + brand.Constraints + "\n")
	}
	b.WriteString("\n")
}

// writeExtraContext 将调用方附带的自由文本上下文写入用户提示词
func writeExtraContext(b *strings.Builder, req *Request) {
	if c := strings.TrimSpace(req.Context); c != "" {
		b.WriteString("Additional context from the requester:\n" + c + "\n\n")
	}
}

// analysisShape 所有操作共享的分析对象形状说明
const analysisShape = `"alternateVersion": "the same deliverable rewritten in your alternate voice",
  "analysis": {"strengths": ["..."], "improvements": ["..."], "opportunities": ["..."]}`
