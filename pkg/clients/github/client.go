package github

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/config"
	"github.com/priyankahotkar/DevCoach-AI/model"
	"github.com/priyankahotkar/DevCoach-AI/pkg/clients/httptool"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	clientName = "github"

	eventTypePush = "PushEvent"

	topLanguageLimit = 5
	recentRepoLimit  = 5

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
			config.GetInstance().GetString(config.ClientGithubAddr),
			clientName,
			time.Duration(config.GetInstance().GetIntOrDefault(config.ClientsCommonTimeout, defaultTimeoutSeconds))*time.Second,
			nil,
			config.GetInstance().GetBool(config.ClientsCommonRequestLog),
		)
		hc.SetHeader("Accept", "application/vnd.github+json")
		instance = NewClient(hc)
	})
	return instance
}

func NewClient(hc *httptool.HTTPClient) *Client {
	return &Client{hc: hc}
}

// Fetch 拉取用户的 github 数据并归一化
// 用户接口失败即整体失败；仓库、事件接口失败降级为空数据。
func (zc *Client) Fetch(ctx context.Context, username string) (model.ActivitySummary, *model.Error) {
	userBody, err := zc.hc.GetWithContext(ctx, fmt.Sprintf("/users/%v", username))
	if err != nil {
		var statusErr *httptool.StatusError
		if errors.As(err, &statusErr) {
			return model.ActivitySummary{}, model.NewErrorWithMessage(model.ErrorPlatformNotFound, fmt.Sprintf("GitHub user %v not found", username))
		}
		return model.ActivitySummary{}, model.NewError(model.ErrorPlatformUnavailable, err)
	}

	var user User
	if err := json.Unmarshal(userBody, &user); err != nil {
		return model.ActivitySummary{}, model.NewError(model.ErrorPlatformUnavailable, errors.WithStack(err))
	}

	repos := zc.fetchRepos(ctx, username)
	events := zc.fetchEvents(ctx, username)

	totalStars := 0
	recentCommits := 0
	languageCounts := map[string]int{}
	var languageOrder []string

	for _, repo := range repos {
		totalStars += repo.StargazersCount
		if repo.Language != "" {
			if _, ok := languageCounts[repo.Language]; !ok {
				languageOrder = append(languageOrder, repo.Language)
			}
			languageCounts[repo.Language]++
		}
	}

	for _, event := range events {
		if event.Type == eventTypePush {
			recentCommits += len(event.Payload.Commits)
		}
	}

	recentRepos := make([]model.RepoSummary, 0, recentRepoLimit)
	for _, repo := range repos {
		if len(recentRepos) >= recentRepoLimit {
			break
		}
		recentRepos = append(recentRepos, model.RepoSummary{Name: repo.Name, Language: repo.Language})
	}

	return model.ActivitySummary{
		Profile: map[string]interface{}{
			"name":         user.Name,
			"public_repos": user.PublicRepos,
			"followers":    user.Followers,
			"following":    user.Following,
			"created_at":   user.CreatedAt,
			"bio":          user.Bio,
		},
		Activity: map[string]interface{}{
			"total_stars":    totalStars,
			"recent_commits": recentCommits,
			"top_languages":  topLanguages(languageOrder, languageCounts),
			"recent_repos":   recentRepos,
		},
	}, nil
}

func (zc *Client) fetchRepos(ctx context.Context, username string) []Repo {
	body, err := zc.hc.GetWithContext(ctx, fmt.Sprintf("/users/%v/repos?sort=updated&per_page=10", username))
	if err != nil {
		log.Warnf("%s client: list repos for %s failed: %v", clientName, username, err)
		return nil
	}
	var repos []Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		log.Warnf("%s client: decode repos for %s failed: %v", clientName, username, err)
		return nil
	}
	return repos
}

func (zc *Client) fetchEvents(ctx context.Context, username string) []Event {
	body, err := zc.hc.GetWithContext(ctx, fmt.Sprintf("/users/%v/events?per_page=30", username))
	if err != nil {
		log.Warnf("%s client: list events for %s failed: %v", clientName, username, err)
		return nil
	}
	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		log.Warnf("%s client: decode events for %s failed: %v", clientName, username, err)
		return nil
	}
	return events
}

// topLanguages 按仓库数量降序取前 5 种语言
// 数量相同的保持仓库列表中的先后顺序。
func topLanguages(order []string, counts map[string]int) []model.LanguageCount {
	ret := make([]model.LanguageCount, 0, len(order))
	for _, language := range order {
		ret = append(ret, model.LanguageCount{Language: language, Count: counts[language]})
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Count > ret[j].Count
	})
	if len(ret) > topLanguageLimit {
		ret = ret[:topLanguageLimit]
	}
	return ret
}
