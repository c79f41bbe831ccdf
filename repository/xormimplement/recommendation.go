package xormimplement

import (
	"fmt"

	"github.com/priyankahotkar/DevCoach-AI/entity"
	"github.com/priyankahotkar/DevCoach-AI/model"
	"github.com/priyankahotkar/DevCoach-AI/repository"

	"xorm.io/builder"
)

type RecommendationRepository struct {
	session *Session
}

func NewRecommendationRepository(session *Session) repository.RecommendationRepository {
	return &RecommendationRepository{session: session}
}

// Insert 追加一条建议记录，不做更新
func (r *RecommendationRepository) Insert(rec *entity.Recommendation) error {
	if rec == nil {
		return fmt.Errorf("insert recommendation cannot be nil")
	}
	if rec.ID == "" {
		return fmt.Errorf("recommendation id is required")
	}
	if rec.UserID == "" {
		return fmt.Errorf("user_id is required")
	}

	_, err := r.session.Table(entity.TableNameRecommendation).Insert(rec)
	if err != nil {
		return fmt.Errorf("failed to insert recommendation: %w", err)
	}

	return nil
}

// GetLatestByUserID 取 generated_at 最新的一条，不存在时返回 (nil, nil)
func (r *RecommendationRepository) GetLatestByUserID(userID string) (*entity.Recommendation, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	result := &entity.Recommendation{}
	ok, err := r.session.Table(entity.TableNameRecommendation).
		Where(builder.Eq{entity.RecommendationFieldUserID: userID}).
		OrderBy(entity.RecommendationFieldGeneratedAt + " desc").
		Limit(1).
		Get(result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest recommendation: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return result, nil
}

// List 按条件查询，默认按 generated_at 倒序
func (r *RecommendationRepository) List(condition *model.GetRecommendationCondition) ([]*entity.Recommendation, error) {
	if condition == nil {
		return nil, fmt.Errorf("get condition cannot be nil")
	}

	session := r.session.Table(entity.TableNameRecommendation)
	var conds []builder.Cond

	if condition.UserID != nil && *condition.UserID != "" {
		conds = append(conds, builder.Eq{entity.RecommendationFieldUserID: *condition.UserID})
	}

	if len(conds) > 0 {
		session = session.Where(builder.And(conds...))
	}

	pagerOrder(session, condition, WithDefaultOrderField(entity.RecommendationFieldGeneratedAt))

	var results []*entity.Recommendation
	err := session.Find(&results)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	return results, nil
}
