package recommend

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/constant"
	"github.com/priyankahotkar/DevCoach-AI/model"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Completer 建议生成依赖的模型调用能力
type Completer interface {
	CompletionContent(ctx context.Context, prompt string) (string, error)
	Timeout() time.Duration
}

type Engine struct {
	llm Completer
}

func NewEngine(llm Completer) *Engine {
	return &Engine{llm: llm}
}

// Generate 生成技能建议
// 模型调用、内容抽取、反序列化任一环节失败都转入规则兜底，
// 所以永远不返回错误，也永远不返回空列表。
func (e *Engine) Generate(ctx context.Context, activity model.CombinedActivity, goal, domain string) []model.Recommendation {
	prompt := buildPrompt(activity, goal, domain)

	callCtx, cancel := context.WithTimeout(ctx, e.llm.Timeout())
	defer cancel()

	content, err := e.llm.CompletionContent(callCtx, prompt)
	if err != nil {
		log.Warnf("recommendation model invocation failed, using fallback: %v", err)
		return fallbackRecommendations(activity, goal, domain)
	}

	recommendations, err := extractRecommendations(content)
	if err != nil {
		log.Warnf("recommendation response parse failed, using fallback: %v", err)
		return fallbackRecommendations(activity, goal, domain)
	}
	if len(recommendations) == 0 {
		log.Warn("recommendation model returned an empty array, using fallback")
		return fallbackRecommendations(activity, goal, domain)
	}

	for _, recommendation := range recommendations {
		if !constant.RecommendationType(recommendation.Type).IsValid() {
			log.Warnf("recommendation %q carries unknown type %q", recommendation.Title, recommendation.Type)
		}
		if !constant.Difficulty(recommendation.Difficulty).IsValid() {
			log.Warnf("recommendation %q carries unknown difficulty %q", recommendation.Title, recommendation.Difficulty)
		}
	}

	return recommendations
}

// extractRecommendations 从模型回复里抽取建议数组
// 模型经常把 json 包在 markdown 代码块里，
// 所以取第一个 '[' 到最后一个 ']' 之间的内容再反序列化。
func extractRecommendations(content string) ([]model.Recommendation, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return nil, errors.Errorf("no json array found in model response: %.200s", content)
	}

	var recommendations []model.Recommendation
	if err := json.Unmarshal([]byte(content[start:end+1]), &recommendations); err != nil {
		return nil, errors.WithStack(err)
	}
	return recommendations, nil
}
