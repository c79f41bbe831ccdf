package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/constant"
	"github.com/priyankahotkar/DevCoach-AI/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	content string
	err     error
	prompt  string
}

func (f *fakeCompleter) CompletionContent(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.content, f.err
}

func (f *fakeCompleter) Timeout() time.Duration {
	return time.Second
}

func TestGenerate(t *testing.T) {
	completer := &fakeCompleter{
		content: `[{"type":"skill","title":"Learn Go","description":"d","difficulty":"beginner","time_estimate":"1 week","resources":["https://go.dev"]}]`,
	}
	engine := NewEngine(completer)

	recommendations := engine.Generate(context.Background(), model.CombinedActivity{}, "goal", "domain")
	require.Len(t, recommendations, 1)
	assert.Equal(t, "Learn Go", recommendations[0].Title)

	// 提示词里带上了 goal 和 domain
	assert.Contains(t, completer.prompt, "Goal: goal")
	assert.Contains(t, completer.prompt, "Domain: domain")
}

func TestGenerateMarkdownWrapped(t *testing.T) {
	// 模型把数组包在 markdown 代码块里也能抽出来
	completer := &fakeCompleter{
		content: "Here are your picks:\n```json\n[{\"type\":\"problem\",\"title\":\"Two Sum\",\"difficulty\":\"beginner\"}]\n```",
	}
	engine := NewEngine(completer)

	recommendations := engine.Generate(context.Background(), model.CombinedActivity{}, "goal", "domain")
	require.Len(t, recommendations, 1)
	assert.Equal(t, "Two Sum", recommendations[0].Title)
}

func TestGenerateNoBracketsFallsBack(t *testing.T) {
	completer := &fakeCompleter{content: "I cannot help with that."}
	engine := NewEngine(completer)

	recommendations := engine.Generate(context.Background(), model.CombinedActivity{}, "goal", "domain")
	require.NotEmpty(t, recommendations)
	assert.Equal(t, "Master Data Structures and Algorithms", recommendations[0].Title)
}

func TestGenerateInvalidJSONFallsBack(t *testing.T) {
	completer := &fakeCompleter{content: `[{"type": "skill", broken`}
	engine := NewEngine(completer)

	recommendations := engine.Generate(context.Background(), model.CombinedActivity{}, "goal", "domain")
	assert.NotEmpty(t, recommendations)
}

func TestGenerateModelErrorFallsBack(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("model offline")}
	engine := NewEngine(completer)

	recommendations := engine.Generate(context.Background(), model.CombinedActivity{}, "goal", "domain")
	assert.NotEmpty(t, recommendations)
}

func TestExtractRecommendations(t *testing.T) {
	recommendations, err := extractRecommendations(`prefix [{"title":"a"},{"title":"b"}] suffix`)
	require.NoError(t, err)
	assert.Len(t, recommendations, 2)

	_, err = extractRecommendations("no array here")
	assert.Error(t, err)

	_, err = extractRecommendations("] backwards [")
	assert.Error(t, err)
}

func TestFallbackGithubNoLanguages(t *testing.T) {
	activity := model.CombinedActivity{
		constant.PlatformGithub: {
			Activity: map[string]interface{}{"top_languages": []model.LanguageCount{}},
		},
	}

	recommendations := fallbackRecommendations(activity, "goal", "General Software Development")
	require.NotEmpty(t, recommendations)
	assert.Equal(t, "Start Your First Repository", recommendations[0].Title)
	assert.Equal(t, constant.DifficultyBeginner.String(), recommendations[0].Difficulty)
}

func TestFallbackLowRating(t *testing.T) {
	activity := model.CombinedActivity{
		constant.PlatformCodeforces: {
			Activity: map[string]interface{}{"current_rating": 900},
		},
	}

	recommendations := fallbackRecommendations(activity, "improve", "algorithms")
	require.NotEmpty(t, recommendations)
	assert.Equal(t, constant.RecommendationTypeProblem.String(), recommendations[0].Type)
	assert.Equal(t, constant.DifficultyBeginner.String(), recommendations[0].Difficulty)
	assert.Contains(t, recommendations[0].Title, "Basic Algorithms")
}

func TestFallbackHighRatingSkipped(t *testing.T) {
	activity := model.CombinedActivity{
		constant.PlatformCodeforces: {
			Activity: map[string]interface{}{"current_rating": 2100},
		},
	}

	recommendations := fallbackRecommendations(activity, "goal", "algorithms")
	for _, recommendation := range recommendations {
		assert.NotEqual(t, "Solve Basic Algorithms Problems", recommendation.Title)
	}
}

func TestFallbackWebDomain(t *testing.T) {
	recommendations := fallbackRecommendations(model.CombinedActivity{}, "goal", "Web Development")
	require.NotEmpty(t, recommendations)
	assert.Equal(t, "Build a Full-Stack Web Application", recommendations[0].Title)
	assert.Contains(t, recommendations[0].Description, "Web Development")
}

func TestFallbackNeverEmpty(t *testing.T) {
	recommendations := fallbackRecommendations(model.CombinedActivity{}, "goal", "embedded")
	require.Len(t, recommendations, 2)
	assert.Equal(t, constant.RecommendationTypeLearning.String(), recommendations[0].Type)
	assert.Equal(t, constant.RecommendationTypeProject.String(), recommendations[1].Type)
}

func TestFallbackCachedActivityShape(t *testing.T) {
	// 缓存反序列化后 current_rating 是 float64、top_languages 是 []interface{}
	activity := model.CombinedActivity{
		constant.PlatformGithub: {
			Activity: map[string]interface{}{"top_languages": []interface{}{}},
		},
		constant.PlatformCodeforces: {
			Activity: map[string]interface{}{"current_rating": float64(800)},
		},
	}

	recommendations := fallbackRecommendations(activity, "goal", "systems")
	require.Len(t, recommendations, 2)
	assert.Equal(t, "Start Your First Repository", recommendations[0].Title)
	assert.Equal(t, "Solve Basic Algorithms Problems", recommendations[1].Title)
}
