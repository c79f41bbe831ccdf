package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/config"
	"github.com/priyankahotkar/DevCoach-AI/model"
	"github.com/priyankahotkar/DevCoach-AI/pkg/clients/httptool"

	"github.com/pkg/errors"
)

const (
	clientName = "leetcode"

	difficultyAll    = "all"
	difficultyEasy   = "easy"
	difficultyMedium = "medium"
	difficultyHard   = "hard"

	defaultRealName = "Unknown"
	absentRanking   = "N/A"

	defaultTimeoutSeconds = 10
)

type Client struct {
	hc *httptool.HTTPClient
}

var (
	instance *Client
	once     sync.Once
)

func GetInstance() *Client {
	once.Do(func() {
		hc := httptool.NewHTTPClient(
			config.GetInstance().GetString(config.ClientLeetcodeAddr),
			clientName,
			time.Duration(config.GetInstance().GetIntOrDefault(config.ClientsCommonTimeout, defaultTimeoutSeconds))*time.Second,
			nil,
			config.GetInstance().GetBool(config.ClientsCommonRequestLog),
		)
		instance = NewClient(hc)
	})
	return instance
}

func NewClient(hc *httptool.HTTPClient) *Client {
	return &Client{hc: hc}
}

// Fetch 拉取用户的 leetcode 数据并归一化
// 单接口平台，任何失败都走错误分支。
func (zc *Client) Fetch(ctx context.Context, username string) (model.ActivitySummary, *model.Error) {
	body, err := zc.hc.GetWithContext(ctx, fmt.Sprintf("/user/%v", username))
	if err != nil {
		var statusErr *httptool.StatusError
		if errors.As(err, &statusErr) {
			return model.ActivitySummary{}, model.NewErrorWithMessage(model.ErrorPlatformNotFound, fmt.Sprintf("LeetCode user %v not found", username))
		}
		return model.ActivitySummary{}, model.NewError(model.ErrorPlatformUnavailable, err)
	}

	var user UserResponse
	if err := json.Unmarshal(body, &user); err != nil {
		return model.ActivitySummary{}, model.NewError(model.ErrorPlatformUnavailable, errors.WithStack(err))
	}

	totalSolved, easySolved, mediumSolved, hardSolved := 0, 0, 0, 0
	for _, item := range user.SubmitStats.AcSubmissionNum {
		switch strings.ToLower(item.Difficulty) {
		case difficultyAll:
			totalSolved = item.Count
		case difficultyEasy:
			easySolved = item.Count
		case difficultyMedium:
			mediumSolved = item.Count
		case difficultyHard:
			hardSolved = item.Count
		}
	}

	totalAccepted := 0
	totalSubmitted := 1
	for _, item := range user.SubmitStats.TotalSubmissionNum {
		if strings.EqualFold(item.Difficulty, difficultyAll) {
			totalAccepted = item.Count
			totalSubmitted = item.Submissions
			break
		}
	}

	realName := user.Profile.RealName
	if realName == "" {
		realName = defaultRealName
	}

	var ranking interface{} = absentRanking
	if user.Profile.Ranking != nil {
		ranking = *user.Profile.Ranking
	}

	return model.ActivitySummary{
		Profile: map[string]interface{}{
			"username":      username,
			"real_name":     realName,
			"ranking":       ranking,
			"reputation":    user.Profile.Reputation,
			"github_link":   user.Profile.GithubUrl,
			"twitter_link":  user.Profile.TwitterUrl,
			"linkedin_link": user.Profile.LinkedinUrl,
			"about_me":      user.Profile.AboutMe,
		},
		Activity: map[string]interface{}{
			"total_solved":        totalSolved,
			"easy_solved":         easySolved,
			"medium_solved":       mediumSolved,
			"hard_solved":         hardSolved,
			"acceptance_rate":     acceptanceRate(totalAccepted, totalSubmitted),
			"total_submissions":   totalAccepted,
			"contribution_points": user.Profile.ContributionPoints,
			"reputation":          user.Profile.Reputation,
		},
	}, nil
}

// acceptanceRate 通过率展示串
// accepted 为 0 时固定显示 "0%"，其余保留一位小数。
func acceptanceRate(accepted, submitted int) string {
	if accepted == 0 {
		return "0%"
	}
	if submitted < 1 {
		submitted = 1
	}
	return fmt.Sprintf("%.1f%%", float64(accepted)/float64(submitted)*100)
}
