package controller

import (
	"net/http"

	"github.com/priyankahotkar/DevCoach-AI/model"
	"github.com/priyankahotkar/DevCoach-AI/service/factory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AnalyzeProfile 多平台分析接口
// 平台拉取失败不影响响应状态码，只有入参非法和持久化失败才报错。
func AnalyzeProfile(ctx *gin.Context) {
	var req model.AnalyzeProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := factory.GetServiceFactory().NewAnalyzeService().AnalyzeProfile(ctx, &req)
	if err != nil {
		log.Errorf("AnalyzeProfile error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// GetUserAnalysis 查询档案和最新建议
func GetUserAnalysis(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	res, err := factory.GetServiceFactory().NewAnalyzeService().GetUserAnalysis(ctx, userID)
	if err != nil {
		if err.Code == model.ErrorUserNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Errorf("GetUserAnalysis error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// GetUserHistory 查询全部建议记录
func GetUserHistory(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	res, err := factory.GetServiceFactory().NewAnalyzeService().GetUserHistory(ctx, userID)
	if err != nil {
		if err.Code == model.ErrorUserNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Errorf("GetUserHistory error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, res)
}
