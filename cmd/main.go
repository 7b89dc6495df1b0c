package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/hermes/internal/config"
	"github.com/UnknownOlympus/hermes/internal/geocoding"
	"github.com/UnknownOlympus/hermes/internal/metrics"
	"github.com/UnknownOlympus/hermes/internal/report"
	"github.com/UnknownOlympus/hermes/internal/service"
	"github.com/UnknownOlympus/hermes/internal/source"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// jobName groups the pushed metrics of every run on the Pushgateway.
const jobName = "hermes"

// main prints the name and user id of every customer within the configured radius.
func main() {
	// Cancel on interrupt so a slow source or geocoder does not hang the run.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.MustLoad()

	// Logs go to stderr, stdout carries the invitation list only.
	runID := uuid.NewString()
	logger := config.NewLogger(cfg.Env, os.Stderr).With("run_id", runID)

	err := run(ctx, cfg, logger, runID)
	stop()
	if err != nil {
		log.Fatalf("hermes run failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, runID string) error {
	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	reader := source.NewReader(source.Config{
		Table:   cfg.Source.Table,
		Timeout: cfg.Source.Timeout,
		Logger:  logger,
		Metrics: appMetrics,
	})

	// The geocoder is only needed when the origin is given as an address.
	var geoProvider geocoding.Provider
	if cfg.Origin.Address != "" {
		var err error
		geoProvider, err = geocoding.NewProvider(geocoding.ProviderConfig{
			Type:      geocoding.ProviderType(cfg.Geocoder.Provider),
			APIKey:    cfg.Geocoder.APIKey,
			RateLimit: cfg.Geocoder.RateLimit,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create geocoding provider: %w", err)
		}
		logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.Geocoder.Provider)
	}

	inviteService := service.NewInviteService(logger, reader, geoProvider, cfg.Geocoder.Provider, appMetrics)

	origin, err := inviteService.ResolveOrigin(ctx, service.OriginConfig{
		Latitude:  cfg.Origin.Latitude,
		Longitude: cfg.Origin.Longitude,
		Address:   cfg.Origin.Address,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve origin: %w", err)
	}

	invitees := inviteService.CalculateCustomersWithinDistance(ctx, cfg.Source.Locator, origin, cfg.MaxDistanceKm)

	if err = report.WriteText(os.Stdout, invitees); err != nil {
		return fmt.Errorf("failed to print invitees: %w", err)
	}

	if cfg.XLSXOutput != "" {
		if err = report.WriteXLSX(cfg.XLSXOutput, invitees); err != nil {
			logger.ErrorContext(ctx, "Failed to write xlsx report", "path", cfg.XLSXOutput, "error", err)
		} else {
			logger.InfoContext(ctx, "Xlsx report written", "path", cfg.XLSXOutput, "invitees", len(invitees))
		}
	}

	if cfg.PushgatewayURL != "" {
		pusher := push.New(cfg.PushgatewayURL, jobName).Gatherer(reg).Grouping("run_id", runID)
		if err = pusher.PushContext(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to push metrics", "url", cfg.PushgatewayURL, "error", err)
		}
	}

	return nil
}
