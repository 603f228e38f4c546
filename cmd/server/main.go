package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/api/internal/config"
	"github.com/mergington/activities/api/internal/handler"
	"github.com/mergington/activities/api/internal/middleware"
	"github.com/mergington/activities/api/internal/observability"
	"github.com/mergington/activities/api/internal/repository"
	"github.com/mergington/activities/api/internal/seed"
	"github.com/mergington/activities/api/internal/service"
	"github.com/mergington/activities/api/internal/store"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the in-memory registry with the seed roster. State lives
	// only in process memory and is lost on restart.
	registry := store.New()
	count := seed.Load(registry)
	observability.SetActivityCount(count)

	slog.Info("registry seeded", slog.Int("activities", count))

	// Initialize repository, service, and handlers
	activityRepo := repository.NewActivityRepository(registry)

	activityService := service.NewActivityService(service.ActivityServiceConfig{
		Repo: activityRepo,
	})

	activityHandler := handler.NewActivityHandler(activityService)

	// Create router and register routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.Health)

	// Activity registry endpoints
	mux.HandleFunc("GET /activities", activityHandler.List)
	mux.HandleFunc("POST /activities/{name}/signup", activityHandler.Signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", activityHandler.Unregister)

	// Front-end assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Server.StaticDir))))

	// Prometheus exposition
	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
