package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/Atlas/internal/api"
	"github.com/MikeSquared-Agency/Atlas/internal/boundary"
	"github.com/MikeSquared-Agency/Atlas/internal/config"
	"github.com/MikeSquared-Agency/Atlas/internal/dataset"
	"github.com/MikeSquared-Agency/Atlas/internal/geocode"
	"github.com/MikeSquared-Agency/Atlas/internal/hermes"
	"github.com/MikeSquared-Agency/Atlas/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Region dataset
	regions, err := dataset.Load(cfg.Dataset.RegionsPath)
	if err != nil {
		logger.Error("failed to load region dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("region dataset loaded", "regions", len(regions))

	// Zip resolver
	resolver, err := geocode.Load(cfg.Dataset.ZipsPath)
	if err != nil {
		logger.Error("failed to load zip table", "error", err)
		os.Exit(1)
	}

	// Hermes (optional)
	var hermesClient hermes.Client
	if cfg.Hermes.URL != "" {
		hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to hermes, running without events", "error", err)
		} else {
			hermesClient = hc
			defer hc.Close()
			logger.Info("connected to hermes")
		}
	}

	// Boundary GeoJSON for the map view; a failed fetch is not fatal
	boundaryClient := boundary.NewClient(cfg.Boundary.URL, cfg.BoundaryTimeout())
	if err := boundaryClient.Fetch(ctx); err != nil {
		logger.Warn("boundary fetch failed, map data unavailable", "error", err)
		if hermesClient != nil {
			_ = hermesClient.Publish(hermes.SubjectBoundaryFailed, hermes.BoundaryFailedEvent{
				URL:       cfg.Boundary.URL,
				Error:     err.Error(),
				Timestamp: time.Now(),
			})
		}
	} else {
		logger.Info("boundary data loaded")
	}

	// Score engine
	scorer := scoring.NewScorer(cfg.Scoring.ProximityDecayKm, logger)
	defaultWeights := scoring.WeightSet{
		Income:           cfg.Scoring.Weights.Income,
		CostOfLiving:     cfg.Scoring.Weights.CostOfLiving,
		CrimeRate:        cfg.Scoring.Weights.CrimeRate,
		JobOpportunities: cfg.Scoring.Weights.JobOpportunities,
		Climate:          cfg.Scoring.Weights.Climate,
	}
	if err := defaultWeights.Validate(); err != nil {
		logger.Error("invalid configured weights", "error", err)
		os.Exit(1)
	}

	if hermesClient != nil {
		source := cfg.Dataset.RegionsPath
		if source == "" {
			source = "builtin"
		}
		_ = hermesClient.Publish(hermes.SubjectDatasetLoaded, hermes.DatasetLoadedEvent{
			Source:      source,
			RegionCount: len(regions),
			Timestamp:   time.Now(),
		})
	}

	// API server
	router := api.NewRouter(regions, scorer, resolver, boundaryClient, hermesClient, defaultWeights, cfg.Server.AdminToken, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
