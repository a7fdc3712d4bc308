package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vendor-report-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.metrics)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return fmt.Errorf("failed to setup core domains: %w", err)
	}

	r := &srv.gin.RouterGroup
	if err := srv.setupArtifactDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup artifact domain: %w", err)
	}
	if err := srv.setupReportConfigDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup report configuration domain: %w", err)
	}
	if err := srv.setupReportDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup report domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.Metrics())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
