package http

import (
	"vendor-report-srv/internal/middleware"
	"vendor-report-srv/internal/reportconfig"
	"vendor-report-srv/pkg/discord"
	"vendor-report-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler serves saved configurations and templates.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      reportconfig.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc reportconfig.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
