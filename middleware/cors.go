package middleware

import (
	"strings"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cors 跨域中间件
// 允许的来源来自配置，逗号分隔，"*" 表示放开全部。
func Cors() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := config.GetInstance().GetStringOrDefault(config.AppCorsOrigins, "*")
	if origins == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	}

	return cors.New(corsConfig)
}
