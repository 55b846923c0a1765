package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelbook/atlas/internal/api"
	"travelbook/atlas/internal/config"
	"travelbook/atlas/internal/jobs"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/routes"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Atlas starting up",
		"environment", cfg.AppEnv,
		"store", cfg.StoreDriver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := api.InitDependencies(ctx, cfg)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logging.Warn("Failed to close dependencies", "error", err)
		}
	}()

	if cfg.SeedOnStart {
		if err := deps.Services.FlightStatus.InitializeMockData(ctx); err != nil {
			logging.Error("Failed to seed flight status data", "error", err)
		}
		if err := deps.Services.Packages.InitializeMockData(ctx); err != nil {
			logging.Error("Failed to seed travel packages", "error", err)
		}
	}

	jobs.InitializeJobs(ctx, deps.Services.FlightStatus, deps.Metrics, cfg.StatusSimulationInterval)

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, cfg, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server failed", "error", err.Error())
		}
	}()

	<-ctx.Done()
	logging.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err)
	}
}
