package httpserver

import (
	"context"
	"time"

	aggregationPostgre "vendor-report-srv/internal/aggregation/repository/postgre"
	aggregationRedis "vendor-report-srv/internal/aggregation/repository/redis"
	aggregationUsecase "vendor-report-srv/internal/aggregation/usecase"
	artifactPostgre "vendor-report-srv/internal/artifact/repository/postgre"
	artifactRedis "vendor-report-srv/internal/artifact/repository/redis"
	artifactUsecase "vendor-report-srv/internal/artifact/usecase"
	"vendor-report-srv/internal/metric"
	reportconfigPostgre "vendor-report-srv/internal/reportconfig/repository/postgre"
	reportconfigUsecase "vendor-report-srv/internal/reportconfig/usecase"
)

// setupCoreDomains builds the use cases the report domain depends on.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	srv.catalog = metric.Builtin()

	ledgerRepo := aggregationPostgre.New(srv.postgresDB, srv.l)
	viewsRepo := aggregationRedis.New(srv.redisClient, srv.l)
	srv.aggregationUC = aggregationUsecase.New(ledgerRepo, viewsRepo, srv.catalog, srv.l, aggregationUsecase.Config{
		Location: srv.location,
		ViewsTTL: time.Duration(srv.report.ViewsTTLDays) * 24 * time.Hour,
		Metrics:  srv.metrics,
	})

	artifactRepo := artifactPostgre.New(srv.postgresDB, srv.l)
	lockRepo := artifactRedis.New(srv.redisClient, srv.l)
	srv.artifactUC = artifactUsecase.New(artifactRepo, lockRepo, srv.minioClient, srv.l, artifactUsecase.Config{
		Retention:       time.Duration(srv.report.RetentionDays) * 24 * time.Hour,
		ReclaimInterval: srv.report.ReclaimInterval,
		Metrics:         srv.metrics,
	})

	configRepo := reportconfigPostgre.New(srv.postgresDB, srv.l)
	srv.configUC = reportconfigUsecase.New(configRepo, srv.catalog, srv.l, reportconfigUsecase.Config{
		Location: srv.location,
	})

	srv.l.Infof(ctx, "Core domains (Aggregation, Artifact, Report Configuration) initialized")
	return nil
}
