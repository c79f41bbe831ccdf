package router

import (
	"net/http"

	"github.com/priyankahotkar/DevCoach-AI/controller"

	"github.com/gin-gonic/gin"
)

func addApiRouter(engine *gin.Engine) {

	// 分析相关 API
	api := engine.Group("/api/v1")
	{
		api.GET("/", banner)

		// 多平台分析
		api.POST("/analyze-profile", controller.AnalyzeProfile)

		// 分析结果查询
		api.GET("/user/:user_id", controller.GetUserAnalysis)
		api.GET("/user/:user_id/history", controller.GetUserHistory)
	}
}

func banner(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "AI Student Activity Recommender API"})
}
