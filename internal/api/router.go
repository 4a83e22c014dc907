package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/validity-dashboard/internal/handler"
	"github.com/jengzang/validity-dashboard/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.DashboardHandler, tmpl *template.Template, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Validity Dashboard is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 限流只作用于页面和 API
	app := r.Group("")
	if limiter != nil {
		app.Use(middleware.RateLimit(limiter))
	}

	// 仪表盘页面
	app.GET("/", h.Index)

	// API 路由组
	v1 := app.Group("/api/v1")
	{
		v1.GET("/dashboard", h.GetDashboard)
		v1.GET("/range", h.GetRange)
		v1.GET("/export", h.Export)
	}

	return r
}
