package main

import (
	"context"
	"fmt"

	"aquamon-api/config"
	"aquamon-api/config/postgre"
	configRedis "aquamon-api/config/redis"
	"aquamon-api/internal/httpserver"
	"aquamon-api/pkg/discord"
	pkgKafka "aquamon-api/pkg/kafka"
	"aquamon-api/pkg/log"
	pkgMinio "aquamon-api/pkg/minio"
	"aquamon-api/pkg/scope"
)

// @Name AquaMon API
// @description Water district monitoring API.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis; the service degrades to direct reads without it.
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Failed to connect to Redis, threshold cache disabled: %v", err)
		redisClient = nil
	} else {
		defer configRedis.Disconnect(redisClient)
		logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	}

	// Initialize Kafka producer when brokers are configured.
	var producer *pkgKafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = pkgKafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// Initialize MinIO attachment storage when configured.
	var storage pkgMinio.MinIO
	if cfg.MinIO.Endpoint != "" {
		storage, err = pkgMinio.NewMinIO(&cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to initialize MinIO: ", err)
			return
		}
		if err := storage.Connect(ctx); err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	// Initialize Discord crash reports when configured.
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:       cfg.HTTPServer.Port,
		Mode:       cfg.HTTPServer.Mode,
		DB:         postgresDB,
		Redis:      redisClient,
		CacheTTL:   cfg.Redis.CacheTTL,
		JWTManager: scope.New(cfg.JWT.SecretKey),
		Producer:   producer,
		Storage:    storage,
		Discord:    discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}
