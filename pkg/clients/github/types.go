package github

import "encoding/json"

// User /users/{username} 响应中用到的字段
type User struct {
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
	Bio         string `json:"bio"`
}

// Repo /users/{username}/repos 响应中用到的字段
type Repo struct {
	Name            string `json:"name"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
}

// Event /users/{username}/events 响应中用到的字段
// 只关心 PushEvent 的提交数量，提交内容不解析。
type Event struct {
	Type    string `json:"type"`
	Payload struct {
		Commits []json.RawMessage `json:"commits"`
	} `json:"payload"`
}
