package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/pratik-mahalle/fraudguard/docs"
	"github.com/pratik-mahalle/fraudguard/internal/api/handlers"
	"github.com/pratik-mahalle/fraudguard/internal/api/middleware"
	"github.com/pratik-mahalle/fraudguard/internal/api/router"
	"github.com/pratik-mahalle/fraudguard/internal/config"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/tracing"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/validator"
	"github.com/pratik-mahalle/fraudguard/internal/repository/memory"
	"github.com/pratik-mahalle/fraudguard/internal/seed"
	"github.com/pratik-mahalle/fraudguard/internal/services"
)

const version = "1.0.0"

// @title           FraudGuard API
// @version         1.0
// @description     Fraud alert triage, transaction and user risk monitoring.
// @BasePath        /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
		Service:    cfg.Tracing.ServiceName,
	})
	logger.Init(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing.OTLPEndpoint, cfg.Tracing.ServiceName, version, log)
	if err != nil {
		log.FatalWithErr(err, "Failed to initialize tracing")
	}
	defer func() {
		tctx, tcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer tcancel()
		if err := shutdownTracing(tctx); err != nil {
			log.ErrorWithErr(err, "Failed to flush traces")
		}
	}()

	val := validator.New()
	data, err := seed.Load(cfg.Seed.Path, val)
	if err != nil {
		log.FatalWithErr(err, "Failed to load seed data")
	}

	alertRepo, err := memory.NewAlertRepository(data.Alerts)
	if err != nil {
		log.FatalWithErr(err, "Failed to build alert store")
	}
	transactionRepo, err := memory.NewTransactionRepository(data.Transactions)
	if err != nil {
		log.FatalWithErr(err, "Failed to build transaction store")
	}
	userRepo, err := memory.NewUserRepository(data.Users)
	if err != nil {
		log.FatalWithErr(err, "Failed to build user store")
	}
	log.WithFields(map[string]interface{}{
		"alerts":       len(data.Alerts),
		"transactions": len(data.Transactions),
		"users":        len(data.Users),
	}).Info("Seed data loaded")

	alertService := services.NewAlertService(alertRepo, log)
	transactionService := services.NewTransactionService(transactionRepo, log)
	userService := services.NewUserService(userRepo, log)
	dashboardService := services.NewDashboardService(data.Dashboard, alertService, transactionService, userService)

	var reporter *services.StatsReporter
	if cfg.Reporter.Enabled {
		reporter = services.NewStatsReporter(alertService, transactionService, userService, cfg.Reporter.Schedule, log)
		if err := reporter.Start(ctx); err != nil {
			log.FatalWithErr(err, "Failed to start stats reporter")
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go limiter.Run(ctx, 5*time.Minute)

	h := &router.Handlers{
		Health:      handlers.NewHealthHandler(alertRepo, log),
		Alert:       handlers.NewAlertHandler(alertService, log, val),
		Transaction: handlers.NewTransactionHandler(transactionService, log, val),
		User:        handlers.NewUserHandler(userService, log, val),
		Dashboard:   handlers.NewDashboardHandler(dashboardService, log),
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.New(cfg, log, limiter, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Server starting on %s (%s)", srv.Addr, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.FatalWithErr(err, "Server failed")
		}
	}()

	waitForShutdown()
	log.Info("Shutting down server...")

	cancel()
	if reporter != nil {
		reporter.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorWithErr(err, "Server forced to shutdown")
		return
	}

	log.Info("Server stopped")
}

func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
