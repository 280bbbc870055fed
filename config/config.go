package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration, populated from environment variables.
type Config struct {
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	MinIO      MinIOConfig
	JWT        JWTConfig
	Discord    DiscordConfig
	Ingest     IngestConfig
}

// HTTPServerConfig is the configuration for the HTTP API server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level    string `env:"LOG_LEVEL" envDefault:"info"`
	Mode     string `env:"LOG_MODE" envDefault:"production"`
	Encoding string `env:"LOG_ENCODING" envDefault:"json"`
}

// PostgresConfig is the configuration for the PostgreSQL connection pool.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"aquamon"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// RedisConfig is the configuration for the Redis threshold cache.
type RedisConfig struct {
	Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int           `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"5m"`
}

// KafkaConfig is the configuration for the alert event producer.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_ALERT_TOPIC" envDefault:"aquamon.alert-events"`
}

// MinIOConfig is the configuration for report attachment storage.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region    string `env:"MINIO_REGION"`
	Bucket    string `env:"MINIO_REPORT_BUCKET" envDefault:"report-attachments"`
}

// JWTConfig is the configuration for token signing and verification.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// DiscordConfig is the configuration for Discord webhook notifications.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// IngestConfig is the configuration for the daily ingestion job.
type IngestConfig struct {
	// RunAt is the local wall-clock trigger time in "15:04" form.
	RunAt string `env:"INGEST_RUN_AT" envDefault:"06:00"`
	// TimeZone is the IANA zone the trigger time is interpreted in.
	TimeZone string `env:"INGEST_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	if _, err := time.Parse("15:04", cfg.Ingest.RunAt); err != nil {
		return fmt.Errorf("INGEST_RUN_AT must be in HH:MM form: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Ingest.TimeZone); err != nil {
		return fmt.Errorf("INGEST_TIMEZONE is not a valid IANA zone: %w", err)
	}
	return nil
}
