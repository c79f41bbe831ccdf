package entity

import "time"

const (
	TableNameUserProfile = "user_profiles"

	UserProfileFieldID                 = "id"
	UserProfileFieldGithubUsername     = "github_username"
	UserProfileFieldLeetcodeUsername   = "leetcode_username"
	UserProfileFieldCodeforcesUsername = "codeforces_username"
	UserProfileFieldCreatedAt          = "created_at"
	UserProfileFieldLastAnalyzed       = "last_analyzed"
)

// UserProfile 用户档案数据库实体
// 每次分析请求插入一条新记录，不按用户名去重。
type UserProfile struct {
	ID                 string    `xorm:"pk varchar(64) 'id'" json:"id"`
	GithubUsername     string    `xorm:"varchar(128) 'github_username'" json:"github_username,omitempty"`
	LeetcodeUsername   string    `xorm:"varchar(128) 'leetcode_username'" json:"leetcode_username,omitempty"`
	CodeforcesUsername string    `xorm:"varchar(128) 'codeforces_username'" json:"codeforces_username,omitempty"`
	CreatedAt          time.Time `xorm:"created 'created_at'" json:"created_at"`
	LastAnalyzed       time.Time `xorm:"'last_analyzed'" json:"last_analyzed"`
}

func (e *UserProfile) TableName() string {
	return TableNameUserProfile
}
