package codeforces

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/config"
	"github.com/priyankahotkar/DevCoach-AI/model"
	"github.com/priyankahotkar/DevCoach-AI/pkg/clients/httptool"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	clientName = "codeforces"

	statusOK  = "OK"
	verdictOK = "OK"

	defaultRank = "unrated"

	activityActive   = "Active"
	activityInactive = "Inactive"

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
			config.GetInstance().GetString(config.ClientCodeforcesAddr),
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

// Fetch 拉取用户的 codeforces 数据并归一化
// user.info 失败即整体失败；rating、status 接口失败降级为空数据。
func (zc *Client) Fetch(ctx context.Context, username string) (model.ActivitySummary, *model.Error) {
	body, err := zc.hc.GetWithContext(ctx, fmt.Sprintf("/api/user.info?handles=%v", username))
	if err != nil {
		var statusErr *httptool.StatusError
		if errors.As(err, &statusErr) {
			return model.ActivitySummary{}, model.NewErrorWithMessage(model.ErrorPlatformNotFound, fmt.Sprintf("Codeforces user %v not found", username))
		}
		return model.ActivitySummary{}, model.NewError(model.ErrorPlatformUnavailable, err)
	}

	var userResp UserInfoResponse
	if err := json.Unmarshal(body, &userResp); err != nil {
		return model.ActivitySummary{}, model.NewError(model.ErrorPlatformUnavailable, errors.WithStack(err))
	}
	if userResp.Status != statusOK || len(userResp.Result) == 0 {
		return model.ActivitySummary{}, model.NewErrorWithMessage(model.ErrorPlatformNotFound, fmt.Sprintf("Codeforces user %v not found", username))
	}
	user := userResp.Result[0]

	ratingChanges := zc.fetchRatingChanges(ctx, username)
	submissions := zc.fetchSubmissions(ctx, username)

	solvedProblems := map[string]struct{}{}
	for _, submission := range submissions {
		if submission.Verdict == verdictOK {
			problemId := fmt.Sprintf("%d-%s", submission.Problem.ContestId, submission.Problem.Index)
			solvedProblems[problemId] = struct{}{}
		}
	}

	recentActivity := activityInactive
	if len(submissions) > 0 {
		recentActivity = activityActive
	}

	rank := user.Rank
	if rank == "" {
		rank = defaultRank
	}
	maxRank := user.MaxRank
	if maxRank == "" {
		maxRank = defaultRank
	}

	return model.ActivitySummary{
		Profile: map[string]interface{}{
			"handle":       user.Handle,
			"first_name":   user.FirstName,
			"last_name":    user.LastName,
			"country":      user.Country,
			"city":         user.City,
			"organization": user.Organization,
			"rank":         rank,
			"max_rank":     maxRank,
		},
		Activity: map[string]interface{}{
			"current_rating":        user.Rating,
			"max_rating":            user.MaxRating,
			"contests_participated": len(ratingChanges),
			"problems_solved":       len(solvedProblems),
			"total_submissions":     len(submissions),
			"recent_activity":       recentActivity,
		},
	}, nil
}

func (zc *Client) fetchRatingChanges(ctx context.Context, username string) []RatingChange {
	body, err := zc.hc.GetWithContext(ctx, fmt.Sprintf("/api/user.rating?handle=%v", username))
	if err != nil {
		log.Warnf("%s client: rating history for %s failed: %v", clientName, username, err)
		return nil
	}
	var resp RatingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Warnf("%s client: decode rating history for %s failed: %v", clientName, username, err)
		return nil
	}
	if resp.Status != statusOK {
		log.Warnf("%s client: rating history for %s status %s", clientName, username, resp.Status)
		return nil
	}
	return resp.Result
}

func (zc *Client) fetchSubmissions(ctx context.Context, username string) []Submission {
	body, err := zc.hc.GetWithContext(ctx, fmt.Sprintf("/api/user.status?handle=%v&from=1&count=100", username))
	if err != nil {
		log.Warnf("%s client: submissions for %s failed: %v", clientName, username, err)
		return nil
	}
	var resp StatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Warnf("%s client: decode submissions for %s failed: %v", clientName, username, err)
		return nil
	}
	if resp.Status != statusOK {
		log.Warnf("%s client: submissions for %s status %s", clientName, username, resp.Status)
		return nil
	}
	return resp.Result
}
