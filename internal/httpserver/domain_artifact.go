package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	artifactHTTP "vendor-report-srv/internal/artifact/delivery/http"
	"vendor-report-srv/internal/middleware"
)

func (srv *HTTPServer) setupArtifactDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	handler := artifactHTTP.New(srv.l, srv.artifactUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Artifact domain registered")
	return nil
}
