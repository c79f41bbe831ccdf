package factory

import (
	"context"

	"github.com/priyankahotkar/DevCoach-AI/repository"
	"github.com/priyankahotkar/DevCoach-AI/repository/interfaces"
)

type Factory interface {
	NewSession(ctx context.Context) interfaces.Session
	NewUserProfileRepository(session interfaces.Session) (repository.UserProfileRepository, error)
	NewRecommendationRepository(session interfaces.Session) (repository.RecommendationRepository, error)
}
