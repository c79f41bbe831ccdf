package router

import (
	"github.com/priyankahotkar/DevCoach-AI/middleware"

	"github.com/gin-gonic/gin"
)

func addBasicRouter(engine *gin.Engine) {
	engine.Use(gin.Recovery())
	engine.Use(middleware.Cors())
	engine.Use(middleware.Logger)

	engine.GET("/", banner)
}
