package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Order ledger (read-only), report registry
	Postgres PostgresConfig

	// Redis - View counters, reclaim lock
	Redis RedisConfig

	// MinIO - Artifact bytes
	MinIO MinIOConfig

	// Kafka - Job lifecycle events, product view events
	Kafka KafkaConfig

	// JWT - Authentication
	JWT JWTConfig

	// Report generation and retention
	Report ReportConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers       []string
	Topic         string
	ViewsTopic    string
	ConsumerGroup string
	ClientID      string
	// InitialOffset is where a new consumer group starts: oldest or newest.
	InitialOffset string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service).
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
	Migrate  bool
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// ReportConfig drives job stage deadlines, artifact retention and view counters.
type ReportConfig struct {
	RetentionDays    int
	AggregateTimeout time.Duration
	RenderTimeout    time.Duration
	StoreTimeout     time.Duration
	ReclaimInterval  time.Duration
	DefaultTimezone  string
	ViewsTTLDays     int
	// Open jobs are swept on this interval; shutdown waits up to DrainTimeout for running jobs.
	JobSweepInterval time.Duration
	DrainTimeout     time.Duration
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("vendor-report-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/vendor-report/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")
	cfg.Postgres.Migrate = viper.GetBool("postgres.migrate")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ViewsTopic = viper.GetString("kafka.views_topic")
	cfg.Kafka.ConsumerGroup = viper.GetString("kafka.consumer_group")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")
	cfg.Kafka.InitialOffset = viper.GetString("kafka.initial_offset")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Report
	cfg.Report.RetentionDays = viper.GetInt("report.retention_days")
	cfg.Report.AggregateTimeout = viper.GetDuration("report.aggregate_timeout")
	cfg.Report.RenderTimeout = viper.GetDuration("report.render_timeout")
	cfg.Report.StoreTimeout = viper.GetDuration("report.store_timeout")
	cfg.Report.ReclaimInterval = viper.GetDuration("report.reclaim_interval")
	cfg.Report.DefaultTimezone = viper.GetString("report.default_timezone")
	cfg.Report.ViewsTTLDays = viper.GetInt("report.views_ttl_days")
	cfg.Report.JobSweepInterval = viper.GetDuration("report.job_sweep_interval")
	cfg.Report.DrainTimeout = viper.GetDuration("report.drain_timeout")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")
	viper.SetDefault("postgres.migrate", true)

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "vendor-reports")

	// 4. Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "vendor-report.events")
	viper.SetDefault("kafka.views_topic", "storefront.product-views")
	viper.SetDefault("kafka.consumer_group", "vendor-report-views")
	viper.SetDefault("kafka.client_id", "vendor-report-srv")
	viper.SetDefault("kafka.initial_offset", "oldest")

	// JWT
	viper.SetDefault("jwt.issuer", "marketplace-auth-service")
	viper.SetDefault("jwt.audience", []string{"vendor-report-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// Report
	viper.SetDefault("report.retention_days", 30)
	viper.SetDefault("report.aggregate_timeout", "60s")
	viper.SetDefault("report.render_timeout", "60s")
	viper.SetDefault("report.store_timeout", "30s")
	viper.SetDefault("report.reclaim_interval", "1h")
	viper.SetDefault("report.default_timezone", "UTC")
	viper.SetDefault("report.views_ttl_days", 800)
	viper.SetDefault("report.job_sweep_interval", "5m")
	viper.SetDefault("report.drain_timeout", "30s")
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers must have at least one value")
	}
	if o := cfg.Kafka.InitialOffset; o != "" && o != "oldest" && o != "newest" {
		return fmt.Errorf("kafka.initial_offset must be oldest or newest")
	}

	if cfg.Report.RetentionDays <= 0 {
		return fmt.Errorf("report.retention_days must be greater than 0")
	}
	if cfg.Report.AggregateTimeout <= 0 || cfg.Report.RenderTimeout <= 0 || cfg.Report.StoreTimeout <= 0 {
		return fmt.Errorf("report stage timeouts must be greater than 0")
	}
	if cfg.Report.ReclaimInterval < time.Minute {
		return fmt.Errorf("report.reclaim_interval must be at least 1m")
	}
	if _, err := time.LoadLocation(cfg.Report.DefaultTimezone); err != nil {
		return fmt.Errorf("report.default_timezone is invalid: %w", err)
	}

	return nil
}
