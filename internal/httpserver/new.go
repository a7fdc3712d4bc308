package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"vendor-report-srv/config"
	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/metrics"
	"vendor-report-srv/internal/report"
	"vendor-report-srv/internal/reportconfig"
	"vendor-report-srv/pkg/discord"
	pkgJWT "vendor-report-srv/pkg/jwt"
	pkgKafka "vendor-report-srv/pkg/kafka"
	"vendor-report-srv/pkg/log"
	"vendor-report-srv/pkg/minio"
	pkgRedis "vendor-report-srv/pkg/redis"
)

const metricsNamespace = "vendor_report"

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Infrastructure clients
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	jwtManager pkgJWT.IManager

	// Report Configuration
	report   config.ReportConfig
	location *time.Location

	// Monitoring & Notification Configuration
	discord  discord.IDiscord
	registry *prometheus.Registry
	metrics  *metrics.Collector

	// Shared domains, built by setupCoreDomains
	catalog       *metric.Catalog
	aggregationUC aggregation.UseCase
	artifactUC    artifact.UseCase
	configUC      reportconfig.UseCase
	reportUC      report.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Infrastructure clients
	RedisClient   pkgRedis.IRedis
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	JWTManager pkgJWT.IManager

	// Report Configuration
	Report config.ReportConfig

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	loc := time.UTC
	if cfg.Report.DefaultTimezone != "" {
		l, err := time.LoadLocation(cfg.Report.DefaultTimezone)
		if err != nil {
			return nil, fmt.Errorf("invalid report.default_timezone: %w", err)
		}
		loc = l
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Infrastructure clients
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,

		// Authentication & Security Configuration
		jwtManager: cfg.JWTManager,

		// Report Configuration
		report:   cfg.Report,
		location: loc,

		// Monitoring & Notification Configuration
		discord:  cfg.Discord,
		registry: registry,
		metrics:  metrics.NewCollector(metricsNamespace, registry),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	// kafkaProducer is optional: without it no lifecycle events are published

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	// Monitoring & Notification Configuration (optional)
	// if srv.discord == nil {
	// 	return errors.New("discord is required")
	// }

	return nil
}
