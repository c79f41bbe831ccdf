package constant

const (
	EmptyString = ""
)

// 平台标识，作为 activity_data 的 key 返回给调用方
const (
	PlatformGithub     = "github"
	PlatformLeetcode   = "leetcode"
	PlatformCodeforces = "codeforces"
)

// 分析请求的默认参数
const (
	DefaultGoal   = "Improve programming skills"
	DefaultDomain = "General Software Development"
)
