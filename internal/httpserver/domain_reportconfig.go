package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"vendor-report-srv/internal/middleware"
	reportconfigHTTP "vendor-report-srv/internal/reportconfig/delivery/http"
)

func (srv *HTTPServer) setupReportConfigDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	handler := reportconfigHTTP.New(srv.l, srv.configUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report configuration domain registered")
	return nil
}
