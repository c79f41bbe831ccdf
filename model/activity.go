package model

// ActivitySummary 单平台归一化后的活动数据
// profile 是平台相关的身份信息，activity 是平台相关的活动指标。
// error 与 activity 可以同时存在（部分数据可取时）。
type ActivitySummary struct {
	Profile  map[string]interface{} `json:"profile,omitempty"`
	Activity map[string]interface{} `json:"activity,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// CombinedActivity 平台标识 -> ActivitySummary
// 只包含本次请求提供了用户名的平台。
type CombinedActivity map[string]ActivitySummary

// LanguageCount 仓库语言计数
// 按数量降序排列，数量相同的保持平台返回的先后顺序，
// 所以用有序序列而不是 map。
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// RepoSummary 最近更新的仓库摘要
type RepoSummary struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
}
