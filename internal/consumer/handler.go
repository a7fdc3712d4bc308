package consumer

import (
	"context"
	"fmt"
	"time"

	viewsConsumer "vendor-report-srv/internal/aggregation/delivery/kafka/consumer"
	aggregationPostgre "vendor-report-srv/internal/aggregation/repository/postgre"
	aggregationRedis "vendor-report-srv/internal/aggregation/repository/redis"
	aggregationUsecase "vendor-report-srv/internal/aggregation/usecase"
	"vendor-report-srv/internal/metric"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	viewsConsumer *viewsConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	loc := time.UTC
	if srv.report.DefaultTimezone != "" {
		l, err := time.LoadLocation(srv.report.DefaultTimezone)
		if err != nil {
			return nil, fmt.Errorf("invalid report.default_timezone: %w", err)
		}
		loc = l
	}

	ledgerRepo := aggregationPostgre.New(srv.postgresDB, srv.l)
	viewsRepo := aggregationRedis.New(srv.redisClient, srv.l)
	aggregationUC := aggregationUsecase.New(ledgerRepo, viewsRepo, metric.Builtin(), srv.l, aggregationUsecase.Config{
		Location: loc,
		ViewsTTL: time.Duration(srv.report.ViewsTTLDays) * 24 * time.Hour,
	})

	views, err := viewsConsumer.New(viewsConsumer.Config{
		Logger:        srv.l,
		Brokers:       srv.kafkaConfig.Brokers,
		Topic:         srv.kafkaConfig.ViewsTopic,
		GroupID:       srv.kafkaConfig.ConsumerGroup,
		ClientID:      srv.kafkaConfig.ClientID,
		InitialOffset: srv.kafkaConfig.InitialOffset,
		UseCase:       aggregationUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product view consumer: %w", err)
	}

	srv.l.Infof(ctx, "Aggregation domain initialized")

	return &domainConsumers{
		viewsConsumer: views,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.viewsConsumer.ConsumeProductViews(ctx); err != nil {
		return fmt.Errorf("failed to start product view consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.viewsConsumer != nil {
		if err := consumers.viewsConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing product view consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
