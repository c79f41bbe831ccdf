package recommend

import (
	"fmt"
	"strings"

	"github.com/priyankahotkar/DevCoach-AI/constant"
	"github.com/priyankahotkar/DevCoach-AI/model"

	"github.com/spf13/cast"
)

const fallbackRatingThreshold = 1200

// fallbackRecommendations 模型不可用时的规则兜底
// 规则命中多少条给多少条，一条都没有时给两条通用建议，保证永不为空。
func fallbackRecommendations(activity model.CombinedActivity, goal, domain string) []model.Recommendation {
	var recommendations []model.Recommendation

	if githubData, ok := activity[constant.PlatformGithub]; ok && githubData.Activity != nil {
		if languageCount(githubData.Activity["top_languages"]) == 0 {
			recommendations = append(recommendations, model.Recommendation{
				Type:         constant.RecommendationTypeProject.String(),
				Title:        "Start Your First Repository",
				Description:  "Create your first GitHub repository with a simple project in your preferred programming language",
				Difficulty:   constant.DifficultyBeginner.String(),
				TimeEstimate: "2-3 hours",
				Resources:    []string{"https://github.com", "https://docs.github.com/en/get-started"},
			})
		}
	}

	if codeforcesData, ok := activity[constant.PlatformCodeforces]; ok && codeforcesData.Activity != nil {
		if cast.ToInt(codeforcesData.Activity["current_rating"]) < fallbackRatingThreshold {
			recommendations = append(recommendations, model.Recommendation{
				Type:         constant.RecommendationTypeProblem.String(),
				Title:        "Solve Basic Algorithms Problems",
				Description:  "Practice fundamental algorithms and data structures on Codeforces",
				Difficulty:   constant.DifficultyBeginner.String(),
				TimeEstimate: "1 hour daily",
				Resources:    []string{"https://codeforces.com/problemset"},
			})
		}
	}

	if strings.Contains(strings.ToLower(domain), "web") {
		recommendations = append(recommendations, model.Recommendation{
			Type:         constant.RecommendationTypeProject.String(),
			Title:        "Build a Full-Stack Web Application",
			Description:  fmt.Sprintf("Create a complete web application to enhance your %v skills", domain),
			Difficulty:   constant.DifficultyIntermediate.String(),
			TimeEstimate: "2-4 weeks",
			Resources:    []string{"https://developer.mozilla.org", "https://reactjs.org"},
		})
	}

	if len(recommendations) == 0 {
		recommendations = []model.Recommendation{
			{
				Type:         constant.RecommendationTypeLearning.String(),
				Title:        "Master Data Structures and Algorithms",
				Description:  "Build a strong foundation in computer science fundamentals",
				Difficulty:   constant.DifficultyIntermediate.String(),
				TimeEstimate: "3-6 months",
				Resources:    []string{"https://leetcode.com", "https://codeforces.com"},
			},
			{
				Type:         constant.RecommendationTypeProject.String(),
				Title:        "Build a Portfolio Project",
				Description:  "Create a project that showcases your skills in your domain of interest",
				Difficulty:   constant.DifficultyIntermediate.String(),
				TimeEstimate: "2-4 weeks",
				Resources:    []string{"https://github.com"},
			},
		}
	}

	return recommendations
}

// languageCount 统计语言条目数
// 活动数据可能是进程内的结构体切片，也可能是缓存反序列化出的 []interface{}。
func languageCount(value interface{}) int {
	switch v := value.(type) {
	case []model.LanguageCount:
		return len(v)
	case []interface{}:
		return len(v)
	case map[string]interface{}:
		return len(v)
	default:
		return 0
	}
}
