package model

import (
	"time"

	"github.com/priyankahotkar/DevCoach-AI/entity"
)

// AnalyzeProfileRequest 多平台分析请求
// 三个用户名都是可选的，goal/domain 为空时使用默认值。
type AnalyzeProfileRequest struct {
	GithubUsername     string `json:"github_username"`
	LeetcodeUsername   string `json:"leetcode_username"`
	CodeforcesUsername string `json:"codeforces_username"`
	Goal               string `json:"goal"`
	Domain             string `json:"domain"`
}

// AnalyzeProfileResponse 分析响应
type AnalyzeProfileResponse struct {
	UserID            string           `json:"user_id"`
	ActivityData      CombinedActivity `json:"activity_data"`
	Recommendations   []Recommendation `json:"recommendations"`
	AnalysisTimestamp time.Time        `json:"analysis_timestamp"`
}

// UserAnalysisResponse 按 user_id 查询的响应
// recommendations 取 generated_at 最新的一条记录，没有则为空序列。
type UserAnalysisResponse struct {
	Profile         *entity.UserProfile `json:"profile"`
	Recommendations []Recommendation    `json:"recommendations"`
}

// RecommendationHistoryEntry 历史建议记录
type RecommendationHistoryEntry struct {
	ID              string           `json:"id"`
	Recommendations []Recommendation `json:"recommendations"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// UserHistoryResponse 历史查询响应，按 generated_at 倒序
type UserHistoryResponse struct {
	Profile *entity.UserProfile          `json:"profile"`
	History []RecommendationHistoryEntry `json:"history"`
}
