package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"vendor-report-srv/internal/middleware"
	"vendor-report-srv/internal/report"
	reportHTTP "vendor-report-srv/internal/report/delivery/http"
	reportProducer "vendor-report-srv/internal/report/delivery/kafka/producer"
	reportPostgre "vendor-report-srv/internal/report/repository/postgre"
	reportUsecase "vendor-report-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportPostgre.New(srv.postgresDB, srv.l)

	var prod report.Producer
	if srv.kafkaProducer != nil {
		prod = reportProducer.New(srv.l, srv.kafkaProducer)
	} else {
		srv.l.Warnf(ctx, "Kafka producer not configured, report job events are disabled")
	}

	uc := reportUsecase.New(repo, srv.aggregationUC, srv.configUC, srv.artifactUC, prod, srv.l, reportUsecase.Config{
		AggregateTimeout: srv.report.AggregateTimeout,
		RenderTimeout:    srv.report.RenderTimeout,
		StoreTimeout:     srv.report.StoreTimeout,
		SweepInterval:    srv.report.JobSweepInterval,
		Location:         srv.location,
		Metrics:          srv.metrics,
	})

	srv.reportUC = uc

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
