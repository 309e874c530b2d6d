package main

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/psgurav-dev/analytics-dashboard/internal/config"
	"github.com/psgurav-dev/analytics-dashboard/internal/handlers"
	"github.com/psgurav-dev/analytics-dashboard/internal/server"
	"github.com/psgurav-dev/analytics-dashboard/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.StartTime = time.Now()

	var logger *zap.Logger
	if cfg.Server.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Starting analytics dashboard server...")

	// Data layer
	cache := services.NewDatasetCache()
	datasets := services.NewDatasetService(cache, cfg.Dataset.Seed, cfg.Dataset.Window(), logger)
	metrics := services.NewMetricsService()
	exporter := services.NewExportService(cfg.Export.Separator)
	bulk := services.NewBulkActionService(services.FailurePolicy{
		Rate:    cfg.Bulk.FailureRate,
		Latency: cfg.Bulk.Latency(),
	}, nil, logger)

	// Warm the dataset cache so the first request doesn't pay for generation.
	datasets.Refresh(cfg.Dataset.Size)

	// Regenerate daily so the trailing timestamp window tracks wall time.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		datasets.Refresh(cfg.Dataset.Size)
	}); err != nil {
		logger.Fatal("Failed to schedule dataset refresh", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	h := &server.Handlers{
		Table:     handlers.NewTableHandler(datasets, cfg.Dataset.Size),
		Analytics: handlers.NewAnalyticsHandler(datasets, metrics, cfg.Dataset.Size),
		Export:    handlers.NewExportHandler(datasets, exporter, cfg.Dataset.Size),
		Bulk:      handlers.NewBulkActionHandler(bulk),
	}

	httpServer := server.New(cfg, h, logger)
	httpServer.Setup()

	if err := httpServer.Start(); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
