package http

import (
	"vendor-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	api.Use(mw.Auth())
	{
		api.GET("/templates", h.ListTemplates)
		api.POST("/configs", h.Save)
		api.GET("/configs", h.List)
		api.GET("/configs/:config_id", h.Load)
		api.DELETE("/configs/:config_id", h.Delete)
	}
}
