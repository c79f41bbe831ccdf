package xormimplement

import (
	"fmt"

	"github.com/priyankahotkar/DevCoach-AI/entity"
	"github.com/priyankahotkar/DevCoach-AI/repository"

	"xorm.io/builder"
)

type UserProfileRepository struct {
	session *Session
}

func NewUserProfileRepository(session *Session) repository.UserProfileRepository {
	return &UserProfileRepository{session: session}
}

// Insert 插入一条新档案，每次分析请求都会新建，不做 upsert
func (r *UserProfileRepository) Insert(profile *entity.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("insert profile cannot be nil")
	}
	if profile.ID == "" {
		return fmt.Errorf("profile id is required")
	}

	_, err := r.session.Table(entity.TableNameUserProfile).Insert(profile)
	if err != nil {
		return fmt.Errorf("failed to insert user_profile: %w", err)
	}

	return nil
}

// Get 按 id 查询，不存在时返回 (nil, nil)
func (r *UserProfileRepository) Get(id string) (*entity.UserProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	result := &entity.UserProfile{}
	ok, err := r.session.Table(entity.TableNameUserProfile).
		Where(builder.Eq{entity.UserProfileFieldID: id}).
		Get(result)
	if err != nil {
		return nil, fmt.Errorf("failed to get user_profile: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return result, nil
}
