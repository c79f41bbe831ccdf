package repository

import (
	"github.com/priyankahotkar/DevCoach-AI/entity"
)

type UserProfileRepository interface {
	Insert(profile *entity.UserProfile) error
	Get(id string) (*entity.UserProfile, error)
}
