package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine for the dashboard API
func NewRouter(handler *Handler, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.GET("/dashboard", handler.GetDashboard)
	api.GET("/analytics", handler.GetAnalytics)
	api.GET("/history", handler.GetHistory)
	api.GET("/fleet", handler.GetFleet)
	api.GET("/leaders", handler.GetLeaders)
	api.GET("/archive", handler.GetArchives)
	api.GET("/archive/:reportId", handler.GetArchiveByReport)
	api.POST("/reports", handler.SubmitReport)

	return r
}
