package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/app"
	"github.com/dealerdesk/dealerdesk/internal/customers"
	"github.com/dealerdesk/dealerdesk/internal/observability"
	"github.com/dealerdesk/dealerdesk/internal/repairs"
	"github.com/dealerdesk/dealerdesk/internal/reporting"
	"github.com/dealerdesk/dealerdesk/internal/reports"
	"github.com/dealerdesk/dealerdesk/internal/store"
	"github.com/dealerdesk/dealerdesk/internal/suppliers"
	"github.com/dealerdesk/dealerdesk/internal/vehicles"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	// The store stands in for a real database: one per process, filled
	// with sample data, discarded on shutdown.
	st := store.New()
	if err := store.Seed(st, store.SeedOptions{
		Seed:     cfg.SampleSeed,
		Vehicles: cfg.SampleVehicles,
		Year:     cfg.SampleYear,
	}); err != nil {
		logger.Error("seed sample data", slog.Any("error", err))
		os.Exit(1)
	}
	nVehicles, nCustomers, nRepairs, nSuppliers := st.Counts()
	logger.Info("store seeded",
		slog.String("session", st.ID()),
		slog.Int("vehicles", nVehicles),
		slog.Int("customers", nCustomers),
		slog.Int("repairs", nRepairs),
		slog.Int("suppliers", nSuppliers))

	reportingService := reporting.NewService(logger)
	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		VehiclesHandler:  vehicles.NewHandler(logger, st),
		CustomersHandler: customers.NewHandler(logger, st),
		RepairsHandler:   repairs.NewHandler(logger, st),
		SuppliersHandler: suppliers.NewHandler(logger, st, reportingService),
		ReportsHandler:   reports.NewHandler(logger, st, reportingService),
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
