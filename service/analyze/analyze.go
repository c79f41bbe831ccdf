package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/config"
	"github.com/priyankahotkar/DevCoach-AI/constant"
	"github.com/priyankahotkar/DevCoach-AI/entity"
	"github.com/priyankahotkar/DevCoach-AI/model"
	"github.com/priyankahotkar/DevCoach-AI/pkg/clients/codeforces"
	"github.com/priyankahotkar/DevCoach-AI/pkg/clients/github"
	"github.com/priyankahotkar/DevCoach-AI/pkg/clients/leetcode"
	"github.com/priyankahotkar/DevCoach-AI/pkg/clients/llm_model"
	redisclient "github.com/priyankahotkar/DevCoach-AI/pkg/clients/redis"
	"github.com/priyankahotkar/DevCoach-AI/repository/factory"
	"github.com/priyankahotkar/DevCoach-AI/service/recommend"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultCacheTTLSeconds = 300

// PlatformFetcher 平台数据拉取能力
type PlatformFetcher interface {
	Fetch(ctx context.Context, username string) (model.ActivitySummary, *model.Error)
}

// recommendationGenerator 建议生成能力
type recommendationGenerator interface {
	Generate(ctx context.Context, activity model.CombinedActivity, goal, domain string) []model.Recommendation
}

type Service struct {
	repositoryFactory factory.Factory
	engine            recommendationGenerator
	fetchers          map[string]PlatformFetcher
	cache             *redisclient.RedisClient
	cacheTTL          time.Duration
}

// NewService 组装分析服务
// redis 缓存是可选依赖，连不上只记日志不影响启动。
func NewService(repositoryFactory factory.Factory) *Service {
	s := &Service{
		repositoryFactory: repositoryFactory,
		engine:            recommend.NewEngine(llm_model.GetInstance()),
		fetchers: map[string]PlatformFetcher{
			constant.PlatformGithub:     github.GetInstance(),
			constant.PlatformLeetcode:   leetcode.GetInstance(),
			constant.PlatformCodeforces: codeforces.GetInstance(),
		},
		cacheTTL: time.Duration(config.GetInstance().GetIntOrDefault(config.CacheActivityTTL, defaultCacheTTLSeconds)) * time.Second,
	}

	if config.GetInstance().GetBool(config.CacheActivityEnable) {
		cache, err := redisclient.GetInstance()
		if err != nil {
			log.Warnf("activity cache unavailable, continuing without it: %v", err)
		} else {
			s.cache = cache
		}
	}

	return s
}

// AnalyzeProfile 多平台分析主流程
// 平台拉取失败只体现在对应平台的 error 字段里，不会让请求失败；
// 只有持久化失败才返回错误。
func (s *Service) AnalyzeProfile(ctx context.Context, req *model.AnalyzeProfileRequest) (*model.AnalyzeProfileResponse, *model.Error) {
	goal := req.Goal
	if goal == "" {
		goal = constant.DefaultGoal
	}
	domain := req.Domain
	if domain == "" {
		domain = constant.DefaultDomain
	}

	usernames := map[string]string{}
	if req.GithubUsername != "" {
		usernames[constant.PlatformGithub] = req.GithubUsername
	}
	if req.LeetcodeUsername != "" {
		usernames[constant.PlatformLeetcode] = req.LeetcodeUsername
	}
	if req.CodeforcesUsername != "" {
		usernames[constant.PlatformCodeforces] = req.CodeforcesUsername
	}

	combined := s.collectActivity(ctx, usernames)
	recommendations := s.engine.Generate(ctx, combined, goal, domain)

	now := time.Now().UTC()
	profile := &entity.UserProfile{
		ID:                 uuid.NewString(),
		GithubUsername:     req.GithubUsername,
		LeetcodeUsername:   req.LeetcodeUsername,
		CodeforcesUsername: req.CodeforcesUsername,
		LastAnalyzed:       now,
	}

	recommendationsJson, err := json.Marshal(recommendations)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, errors.WithStack(err))
	}

	session := s.repositoryFactory.NewSession(ctx)
	defer session.Close()

	profileRepo, err := s.repositoryFactory.NewUserProfileRepository(session)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}
	if err := profileRepo.Insert(profile); err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	recommendationRepo, err := s.repositoryFactory.NewRecommendationRepository(session)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}
	if err := recommendationRepo.Insert(&entity.Recommendation{
		ID:                  uuid.NewString(),
		UserID:              profile.ID,
		RecommendationsJSON: string(recommendationsJson),
		GeneratedAt:         now,
	}); err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	return &model.AnalyzeProfileResponse{
		UserID:            profile.ID,
		ActivityData:      combined,
		Recommendations:   recommendations,
		AnalysisTimestamp: now,
	}, nil
}

// GetUserAnalysis 查询档案和最新一次的建议
func (s *Service) GetUserAnalysis(ctx context.Context, userID string) (*model.UserAnalysisResponse, *model.Error) {
	session := s.repositoryFactory.NewSession(ctx)
	defer session.Close()

	profileRepo, err := s.repositoryFactory.NewUserProfileRepository(session)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}
	profile, err := profileRepo.Get(userID)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}
	if profile == nil {
		return nil, model.NewErrorWithMessage(model.ErrorUserNotFound, "User not found")
	}

	recommendationRepo, err := s.repositoryFactory.NewRecommendationRepository(session)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}
	latest, err := recommendationRepo.GetLatestByUserID(userID)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	recommendations := []model.Recommendation{}
	if latest != nil {
		if err := json.Unmarshal([]byte(latest.RecommendationsJSON), &recommendations); err != nil {
			return nil, model.NewError(model.ErrorDB, errors.WithStack(err))
		}
	}

	return &model.UserAnalysisResponse{
		Profile:         profile,
		Recommendations: recommendations,
	}, nil
}

// GetUserHistory 查询档案和全部建议记录，按生成时间倒序
func (s *Service) GetUserHistory(ctx context.Context, userID string) (*model.UserHistoryResponse, *model.Error) {
	session := s.repositoryFactory.NewSession(ctx)
	defer session.Close()

	profileRepo, err := s.repositoryFactory.NewUserProfileRepository(session)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}
	profile, err := profileRepo.Get(userID)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}
	if profile == nil {
		return nil, model.NewErrorWithMessage(model.ErrorUserNotFound, "User not found")
	}

	recommendationRepo, err := s.repositoryFactory.NewRecommendationRepository(session)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}
	records, err := recommendationRepo.List(&model.GetRecommendationCondition{
		UserID: &userID,
		Order:  &model.Order{OrderBy: entity.RecommendationFieldGeneratedAt, OrderAsc: false},
	})
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	history := make([]model.RecommendationHistoryEntry, 0, len(records))
	for _, record := range records {
		var recommendations []model.Recommendation
		if err := json.Unmarshal([]byte(record.RecommendationsJSON), &recommendations); err != nil {
			return nil, model.NewError(model.ErrorDB, errors.WithStack(err))
		}
		history = append(history, model.RecommendationHistoryEntry{
			ID:              record.ID,
			Recommendations: recommendations,
			GeneratedAt:     record.GeneratedAt,
		})
	}

	return &model.UserHistoryResponse{
		Profile: profile,
		History: history,
	}, nil
}

// collectActivity 按平台并发拉取活动数据
// 结果 map 的 key 集合恰好等于本次请求提供了用户名的平台集合。
func (s *Service) collectActivity(ctx context.Context, usernames map[string]string) model.CombinedActivity {
	combined := model.CombinedActivity{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for platform, username := range usernames {
		wg.Add(1)
		go func(platform, username string) {
			defer wg.Done()
			summary := s.fetchWithCache(ctx, platform, username)
			mu.Lock()
			combined[platform] = summary
			mu.Unlock()
		}(platform, username)
	}

	wg.Wait()
	return combined
}

// fetchWithCache 先查缓存再拉平台，拉取失败转成占位摘要
func (s *Service) fetchWithCache(ctx context.Context, platform, username string) model.ActivitySummary {
	cacheKey := fmt.Sprintf("activity:%v:%v", platform, username)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var summary model.ActivitySummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				log.Debugf("activity cache hit for %s", cacheKey)
				return summary
			}
			log.Warnf("decode cached activity for %s failed: %v", cacheKey, err)
		}
	}

	fetcher, ok := s.fetchers[platform]
	if !ok {
		log.Errorf("no fetcher registered for platform %s", platform)
		return model.ActivitySummary{
			Profile: map[string]interface{}{"username": username},
			Error:   fmt.Sprintf("unsupported platform %v", platform),
		}
	}

	summary, fetchErr := fetcher.Fetch(ctx, username)
	if fetchErr != nil {
		return model.ActivitySummary{
			Profile: map[string]interface{}{"username": username},
			Error:   fetchErr.Message,
		}
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, cacheKey, encoded, s.cacheTTL).Err(); err != nil {
				log.Warnf("populate activity cache for %s failed: %v", cacheKey, err)
			}
		}
	}

	return summary
}
