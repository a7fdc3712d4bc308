package http

import (
	"vendor-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	api.Use(mw.Auth())
	{
		api.POST("/generate", h.Generate)
		api.POST("/quick/:kind", h.GenerateQuick)
		api.GET("/jobs/:job_id", h.GetJob)
	}
}
