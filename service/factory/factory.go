package factory

import (
	"sync"

	"github.com/priyankahotkar/DevCoach-AI/repository/factory"
	"github.com/priyankahotkar/DevCoach-AI/repository/xormimplement"
	"github.com/priyankahotkar/DevCoach-AI/service/analyze"
)

var instance *Factory
var once sync.Once

// 创建
type Factory struct {
	repositoryFactory factory.Factory

	analyzeOnce    sync.Once
	analyzeService *analyze.Service
}

// 单例模式，
func GetServiceFactory() *Factory {
	once.Do(func() {
		instance = &Factory{repositoryFactory: xormimplement.GetRepositoryFactoryInstance()}
	})
	return instance
}

// NewAnalyzeService 获取分析服务
// 服务内部持有平台客户端和缓存连接，整个进程只组装一次。
func (f *Factory) NewAnalyzeService() *analyze.Service {
	f.analyzeOnce.Do(func() {
		f.analyzeService = analyze.NewService(f.repositoryFactory)
	})
	return f.analyzeService
}
