package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"aquamon-api/config"
	"aquamon-api/config/postgre"
	configRedis "aquamon-api/config/redis"
	activityPostgres "aquamon-api/internal/activity/repository/postgre"
	activityUC "aquamon-api/internal/activity/usecase"
	"aquamon-api/internal/alertlog"
	alertlogPostgres "aquamon-api/internal/alertlog/repository/postgre"
	alertlogUC "aquamon-api/internal/alertlog/usecase"
	districtPostgres "aquamon-api/internal/district/repository/postgre"
	districtUC "aquamon-api/internal/district/usecase"
	"aquamon-api/internal/ingest"
	metricsPostgres "aquamon-api/internal/metrics/repository/postgre"
	metricsUC "aquamon-api/internal/metrics/usecase"
	thresholdRepo "aquamon-api/internal/threshold/repository"
	thresholdPostgres "aquamon-api/internal/threshold/repository/postgre"
	thresholdRedis "aquamon-api/internal/threshold/repository/redis"
	thresholdUC "aquamon-api/internal/threshold/usecase"
	pkgKafka "aquamon-api/pkg/kafka"
	"aquamon-api/pkg/log"
)

// The ingestor runs the daily sampling job: once per day at the
// configured local time it samples every registered district and
// upserts that day's metric record through the same usecase the API
// serves, so threshold alerts fire for scheduled ingestion too.
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis; the job degrades to direct reads without it.
	var thrCache thresholdRepo.Cache
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Failed to connect to Redis, threshold cache disabled: %v", err)
	} else {
		defer configRedis.Disconnect(redisClient)
		thrCache = thresholdRedis.New(logger, redisClient, cfg.Redis.CacheTTL)
	}

	// Initialize Kafka producer when brokers are configured.
	var pub alertlog.Publisher
	var producer *pkgKafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = pkgKafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		pub = producer
	}

	loc, err := time.LoadLocation(cfg.Ingest.TimeZone)
	if err != nil {
		logger.Error(ctx, "Failed to load ingest timezone: ", err)
		return
	}

	// Wire usecases
	actUC := activityUC.New(logger, activityPostgres.New(logger, postgresDB))
	thrUC := thresholdUC.New(logger, thresholdPostgres.New(logger, postgresDB), thrCache)
	alertUC := alertlogUC.New(logger, alertlogPostgres.New(logger, postgresDB), actUC, pub, nil)
	metUC := metricsUC.New(logger, metricsPostgres.New(logger, postgresDB), thrUC, alertUC, actUC)
	disUC := districtUC.New(logger, districtPostgres.New(logger, postgresDB))

	job := ingest.NewJob(logger, disUC, metUC, ingest.NewSimSampler(time.Now().UnixNano()), cfg.Ingest.RunAt, loc)

	logger.Infof(ctx, "Ingestion job starting, daily run at %s %s", cfg.Ingest.RunAt, cfg.Ingest.TimeZone)
	if err := job.Start(ctx); err != nil && ctx.Err() == nil {
		logger.Error(ctx, "Ingestion job stopped with error: ", err)
	}
	logger.Info(ctx, "Stopping ingestion service...")

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Errorf(ctx, "Kafka producer close error: %v", err)
		}
	}
}
