package api

import (
	"Reachboard/internal/api/middleware"
	"Reachboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		profileGroup := apiGroup.Group("/profile")
		{
			profileGroup.GET("/metrics", group.ProfileHandler.GetMetrics)
			profileGroup.GET("/analytics", group.ProfileHandler.GetAnalytics)
			profileGroup.POST("", group.ProfileHandler.Create)
			profileGroup.DELETE("/:entity_id", group.ProfileHandler.Delete)
		}

		urlGroup := apiGroup.Group("/url")
		{
			urlGroup.POST("/upload", group.URLHandler.Upload)
			urlGroup.GET("/all", group.URLHandler.List)
			urlGroup.GET("/summary", group.URLHandler.Summary)
			urlGroup.GET("/count", group.URLHandler.Count)
			urlGroup.GET("/analysis/:url_id", group.URLHandler.Analysis)
			urlGroup.GET("/engagement-history/:url_id", group.URLHandler.EngagementHistory)
			urlGroup.POST("/reanalyze/:url_id", group.URLHandler.Reanalyze)
		}
	}

	return r
}
