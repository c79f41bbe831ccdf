package model

// Recommendation 单条技能建议
// 由模型生成或由规则兜底生成，调用方无法区分来源。
type Recommendation struct {
	Type         string   `json:"type"`        // project | problem | skill | learning
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"` // beginner | intermediate | advanced
	TimeEstimate string   `json:"time_estimate"`
	Resources    []string `json:"resources"`
}
