package router

import (
	"sync"

	"github.com/gin-gonic/gin"
)

var once sync.Once
var instance *gin.Engine

func GetInstance() *gin.Engine {
	once.Do(func() {
		instance = gin.New()
		addBasicRouter(instance)
		addApiRouter(instance)
	})
	return instance
}
