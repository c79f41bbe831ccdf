package xormimplement

import (
	"context"
	"fmt"
	"sync"

	"github.com/priyankahotkar/DevCoach-AI/config"
	"github.com/priyankahotkar/DevCoach-AI/repository"
	"github.com/priyankahotkar/DevCoach-AI/repository/factory"
	"github.com/priyankahotkar/DevCoach-AI/repository/interfaces"

	"github.com/sirupsen/logrus"
	"xorm.io/xorm"

	_ "github.com/lib/pq"
)

var once sync.Once
var instance *Factory

type Factory struct {
	// 连接 pg
	engine *xorm.Engine
}

// 获取一个factory实例
func GetRepositoryFactoryInstance() factory.Factory {
	once.Do(func() {
		instance = &Factory{
			engine: openDB(
				config.GetInstance().GetString(config.BaseDbXormType),
				config.GetInstance().GetString(config.BaseDbXormHost),
				config.GetInstance().GetString(config.BaseDbXormPort),
				config.GetInstance().GetString(config.BaseDbXormUsername),
				config.GetInstance().GetString(config.BaseDbXormName),
				config.GetInstance().GetString(config.BaseDbXormPassword),
				config.GetInstance().GetBool(config.BaseDbXormShowsql),
			),
		}
	})
	return instance
}

// 设置xorm的连接参数
func openDB(dbType string, host string, port string, userName string, name string, password string, showSql bool) *xorm.Engine {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host,
		userName,
		password,
		name,
		port)
	engine, err := xorm.NewEngine(dbType, dsn)
	if err != nil {
		logrus.Errorf("Database connection failed err: %v. Database name: %s", err, name)
		panic(err)
	}
	engine.ShowSQL(showSql)
	return engine
}

// 创建一个会话
func (f *Factory) NewSession(ctx context.Context) interfaces.Session {
	return &Session{Session: f.engine.NewSession().Context(ctx)}
}

// NewUserProfileRepository 创建用户档案仓库
func (f *Factory) NewUserProfileRepository(session interfaces.Session) (repository.UserProfileRepository, error) {
	if s, ok := session.(*Session); ok {
		return NewUserProfileRepository(s), nil
	}
	return nil, fmt.Errorf("xorm session 结构解析失败")
}

// NewRecommendationRepository 创建建议记录仓库
func (f *Factory) NewRecommendationRepository(session interfaces.Session) (repository.RecommendationRepository, error) {
	if s, ok := session.(*Session); ok {
		return NewRecommendationRepository(s), nil
	}
	return nil, fmt.Errorf("xorm session 结构解析失败")
}
