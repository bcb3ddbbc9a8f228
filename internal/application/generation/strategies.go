package generation

import (
	"strings"

	"brandflow-ai-api/internal/domain/entity"
)

// buildCopyPrompt 文案生成：hook/body/cta/完整文案/话题标签/字数
func buildCopyPrompt(req *Request, brand *entity.BrandContext) PromptPair {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = "the brand's current campaign"
	}

	var b strings.Builder
	writeBrandBlock(&b, brand)
	writeExtraContext(&b, req)

	b.WriteString("Write a ready-to-publish " + platformOf(req) + " post about: " + topic + ".\n")
	b.WriteString("Tone: " + toneOf(req) + ".\n\n")
	b.WriteString(`Return this exact JSON shape:
{
  "copy": {
    "hook": "attention-grabbing opening line",
    "body": "main content of the post",
    "cta": "call to action",
    "fullCopy": "hook + body + cta assembled as it would be published",
    "hashtags": ["#tag1", "#tag2"],
    "characterCount": 0
  },
  ` + analysisShape + `
}`)

	return PromptPair{System: systemPreamble, User: b.String()}
}

// buildVariantsPrompt 变体生成：三个固定策略角度的变体 + 另类声音变体
func buildVariantsPrompt(req *Request, brand *entity.BrandContext) PromptPair {
	original := strings.TrimSpace(req.OriginalContent)
	if original == "" {
		original = "(no original content provided - invent a short post that fits the brand context)"
	}

	var b strings.Builder
	writeBrandBlock(&b, brand)
	writeExtraContext(&b, req)

	b.WriteString("Create exactly THREE variants of the following " + platformOf(req) + " content, ")
	b.WriteString("each taking a distinct strategic angle: one emotional, one rational, one urgency-driven.\n")
	b.WriteString("Tone: " + toneOf(req) + ".\n\n")
	b.WriteString("Original content:\n" + original + "\n\n")
	b.WriteString(`Return this exact JSON shape:
{
  "variants": [
    {"name": "Emotional", "angle": "emotional", "content": "..."},
    {"name": "Rational", "angle": "rational", "content": "..."},
    {"name": "Urgency", "angle": "urgency", "content": "..."}
  ],
  ` + analysisShape + `
}`)

	return PromptPair{System: systemPreamble, User: b.String()}
}

// buildIdeasPrompt 选题生成：恰好五条内容创意
func buildIdeasPrompt(req *Request, brand *entity.BrandContext) PromptPair {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = "the brand's area of expertise"
	}

	var b strings.Builder
	writeBrandBlock(&b, brand)
	writeExtraContext(&b, req)

	b.WriteString("Brainstorm exactly FIVE content ideas for " + platformOf(req) + " around: " + topic + ".\n")
	b.WriteString("Tone: " + toneOf(req) + ".\n")
	b.WriteString("Each idea needs a title, a one-paragraph description, a content format, the best posting timing, and an engagement-potential rating (low/medium/high).\n\n")
	b.WriteString(`Return this exact JSON shape:
{
  "ideas": [
    {"title": "...", "description": "...", "format": "...", "timing": "...", "engagementPotential": "high"}
  ],
  ` + analysisShape + `
}
The "ideas" array MUST contain exactly 5 entries.`)

	return PromptPair{System: systemPreamble, User: b.String()}
}

// buildImprovePrompt 内容优化：改写 + 变更清单 + 评分
func buildImprovePrompt(req *Request, brand *entity.BrandContext) PromptPair {
	original := strings.TrimSpace(req.OriginalContent)
	if original == "" {
		original = "(no content provided - explain in the changes list that there was nothing to improve)"
	}

	var b strings.Builder
	writeBrandBlock(&b, brand)
	writeExtraContext(&b, req)

	b.WriteString("Improve the following " + platformOf(req) + " content for clarity, engagement and conversion.\n")
	b.WriteString("Tone: " + toneOf(req) + ".\n\n")
	b.WriteString("Content to improve:\n" + original + "\n\n")
	b.WriteString(`Return this exact JSON shape:
{
  "improved": "the rewritten content",
  "changes": ["each concrete change you made and why"],
  "score": 8.5,
  ` + analysisShape + `
}
"score" rates the improvement impact from 0 to 10.`)

	return PromptPair{System: systemPreamble, User: b.String()}
}

// buildTranslatePrompt 翻译：含文化适配；另类声音版本也必须是目标语言
func buildTranslatePrompt(req *Request, brand *entity.BrandContext) PromptPair {
	original := strings.TrimSpace(req.OriginalContent)
	if original == "" {
		original = "(no content provided)"
	}
	target := strings.TrimSpace(req.TargetLanguage)
	if target == "" {
		target = "English"
	}

	var b strings.Builder
	writeBrandBlock(&b, brand)
	writeExtraContext(&b, req)

	b.WriteString("Translate and culturally adapt the following " + platformOf(req) + " content into " + target + ". ")
	b.WriteString("Do not translate literally: adapt idioms, references and formality to the target culture.\n")
	b.WriteString("Tone: " + toneOf(req) + ".\n\n")
	b.WriteString("Content to translate:\n" + original + "\n\n")
	b.WriteString(`Return this exact JSON shape:
{
  "translation": "the adapted content in ` + target + `",
  "culturalAdaptations": ["each place where you adapted rather than translated"],
  "culturalNotes": "anything the marketer should know before publishing in this market",
  ` + analysisShape + `
}
The "alternateVersion" must also be written in ` + target + `.`)

	return PromptPair{System: systemPreamble, User: b.String()}
}
