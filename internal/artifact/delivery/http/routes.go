package http

import (
	"vendor-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	api.Use(mw.Auth())
	{
		api.GET("", h.List)
		api.GET("/:artifact_id/download", h.Download)
		api.DELETE("/:artifact_id", h.Delete)
	}
}
