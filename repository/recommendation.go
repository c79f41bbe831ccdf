package repository

import (
	"github.com/priyankahotkar/DevCoach-AI/entity"
	"github.com/priyankahotkar/DevCoach-AI/model"
)

type RecommendationRepository interface {
	Insert(rec *entity.Recommendation) error
	GetLatestByUserID(userID string) (*entity.Recommendation, error)
	List(condition *model.GetRecommendationCondition) ([]*entity.Recommendation, error)
}
