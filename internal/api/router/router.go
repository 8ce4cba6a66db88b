package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pratik-mahalle/fraudguard/internal/api/handlers"
	"github.com/pratik-mahalle/fraudguard/internal/api/middleware"
	"github.com/pratik-mahalle/fraudguard/internal/config"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/metrics"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Alert       *handlers.AlertHandler
	Transaction *handlers.TransactionHandler
	User        *handlers.UserHandler
	Dashboard   *handlers.DashboardHandler
}

func New(cfg *config.Config, log *logger.Logger, limiter *middleware.RateLimiter, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(middleware.AllowedOrigins(cfg.Server.FrontendURL, cfg.Server.Environment)))
	if cfg.Metrics.Enabled {
		r.Use(metrics.Middleware)
	}

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Health checks
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)

		if cfg.Metrics.Enabled {
			r.Handle("/metrics", metrics.Handler())
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.RateLimit(limiter))

		r.Get("/health", h.Health.Healthz)

		// Alerts
		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", h.Alert.List)
			r.Get("/partition", h.Alert.Partition)
			r.Get("/summary", h.Alert.GetSummary)
			r.Get("/count", h.Alert.Count)
			r.Get("/{id}", h.Alert.Get)
			r.Post("/{id}/actions", h.Alert.ApplyAction)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.Transaction.List)
			r.Get("/summary", h.Transaction.GetSummary)
			r.Get("/{id}", h.Transaction.Get)
		})

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.User.List)
			r.Get("/summary", h.User.GetSummary)
			r.Get("/{id}", h.User.Get)
			r.Get("/{id}/history", h.User.History)
		})

		// Dashboard
		r.Get("/dashboard", h.Dashboard.Get)
	})

	return r
}
