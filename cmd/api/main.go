package main

import (
	"context"
	"fmt"
	"time"

	"vendor-report-srv/config"
	configKafka "vendor-report-srv/config/kafka"
	configMinIO "vendor-report-srv/config/minio"
	configPostgre "vendor-report-srv/config/postgre"
	configRedis "vendor-report-srv/config/redis"
	"vendor-report-srv/internal/httpserver"
	"vendor-report-srv/pkg/discord"
	pkgJWT "vendor-report-srv/pkg/jwt"
	"vendor-report-srv/pkg/log"
)

// @title       Vendor Report Service API
// @description Sales reports for marketplace vendors: generation jobs, downloads and saved configurations.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token issued by the identity service. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL and apply migrations
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if cfg.Postgres.Migrate {
		version, err := configPostgre.Migrate(postgresDB)
		if err != nil {
			logger.Error(ctx, "Failed to migrate PostgreSQL: ", err)
			return
		}
		logger.Infof(ctx, "PostgreSQL schema at version %d", version)
	}

	// 4. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if d, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	}); err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
	} else {
		discordClient = d
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinIO.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinIO.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 7. Initialize Kafka producer (optional, job lifecycle events)
	kafkaProducer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not available, job events disabled: %v", err)
		kafkaProducer = nil
	} else {
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 8. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 9. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Infrastructure clients
		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,

		// Authentication & Security Configuration
		JWTManager: jwtManager,

		// Report Configuration
		Report: cfg.Report,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
