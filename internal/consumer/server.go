package consumer

import (
	"context"
	"database/sql"

	"vendor-report-srv/config"
	"vendor-report-srv/pkg/discord"
	"vendor-report-srv/pkg/log"
	"vendor-report-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l           log.Logger
	kafkaConfig config.KafkaConfig
	report      config.ReportConfig

	// Infrastructure clients
	redisClient redis.IRedis
	postgresDB  *sql.DB

	// Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	Report      config.ReportConfig

	// Infrastructure clients
	RedisClient redis.IRedis
	PostgresDB  *sql.DB

	// Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.notify(ctx, "Consumer startup failed", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}

func (srv *ConsumerServer) notify(ctx context.Context, title string, err error) {
	if srv.discord == nil {
		return
	}
	if sendErr := srv.discord.SendError(ctx, title, "vendor-report-consumer", err); sendErr != nil {
		srv.l.Warnf(ctx, "Failed to notify discord: %v", sendErr)
	}
}
