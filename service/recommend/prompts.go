package recommend

import (
	"encoding/json"
	"fmt"

	"github.com/priyankahotkar/DevCoach-AI/model"

	log "github.com/sirupsen/logrus"
)

const recommendationPromptTemplate = `User's Programming Activity Analysis:

Goal: %v
Domain: %v

Activity Data:
%v

Based on this data, provide 5-7 specific, actionable recommendations for improving their programming skills.
Focus on concrete next steps, specific problems to solve, projects to build, or skills to learn.

Format your response as a JSON array with objects containing:
- "type": "project" | "problem" | "skill" | "learning"
- "title": Brief title of the recommendation
- "description": Detailed description
- "difficulty": "beginner" | "intermediate" | "advanced"
- "time_estimate": Estimated time to complete
- "resources": Array of helpful links or resources`

// buildPrompt 拼装建议生成提示词
// 活动数据以缩进 json 的形式注入，便于模型阅读。
func buildPrompt(activity model.CombinedActivity, goal, domain string) string {
	activityJson, err := json.MarshalIndent(activity, "", "  ")
	if err != nil {
		log.Warnf("marshal activity data for prompt failed: %v", err)
		activityJson = []byte("{}")
	}
	return fmt.Sprintf(recommendationPromptTemplate, goal, domain, string(activityJson))
}
