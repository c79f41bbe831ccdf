package leetcode

// SubmissionCount acSubmissionNum / totalSubmissionNum 中的条目
type SubmissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

// SubmitStats 提交统计块
type SubmitStats struct {
	AcSubmissionNum    []SubmissionCount `json:"acSubmissionNum"`
	TotalSubmissionNum []SubmissionCount `json:"totalSubmissionNum"`
}

// Profile 用户资料块
// ranking 缺省时接口返回 null，用指针区分。
type Profile struct {
	RealName           string `json:"realName"`
	Ranking            *int   `json:"ranking"`
	Reputation         int    `json:"reputation"`
	GithubUrl          string `json:"githubUrl"`
	TwitterUrl         string `json:"twitterUrl"`
	LinkedinUrl        string `json:"linkedinUrl"`
	AboutMe            string `json:"aboutMe"`
	ContributionPoints int    `json:"contributionPoints"`
}

// UserResponse /user/{username} 响应
type UserResponse struct {
	Username    string      `json:"username"`
	Profile     Profile     `json:"profile"`
	SubmitStats SubmitStats `json:"submitStats"`
}
