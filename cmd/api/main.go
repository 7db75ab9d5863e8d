package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/glbatch/buko-service/internal/config"
	"github.com/glbatch/buko-service/internal/handler"
	"github.com/glbatch/buko-service/internal/logging"
	"github.com/glbatch/buko-service/internal/middleware"
	"github.com/glbatch/buko-service/internal/repository"
	"github.com/glbatch/buko-service/internal/service"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("buko-api", cfg.LogLevel, cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := repository.NewPostgresDB(ctx, cfg.DatabaseURL, repository.PoolConfig{
		MaxOpenConns:     cfg.DBMaxOpenConns,
		MaxIdleConns:     cfg.DBMaxIdleConns,
		ConnMaxLifetimeS: cfg.DBConnMaxLifetimeS,
		ConnMaxIdleTimeS: cfg.DBConnMaxIdleTimeS,
	})
	cancel()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	submissions := repository.NewSubmissionRepository(db)
	bukoSvc := service.NewBukoService(submissions)

	bukoHandler := handler.NewBukoHandler(bukoSvc, cfg.MaxBodyBytes)
	configHandler := handler.NewConfigurationsHandler(cfg.MaxBodyBytes)
	submissionHandler := handler.NewSubmissionHandler(submissions, cfg.SubmissionListLimit)
	healthHandler := handler.NewHealthHandler(db)

	api := http.NewServeMux()
	api.HandleFunc("POST /api/v1/buko/process", bukoHandler.Process)
	api.HandleFunc("POST /api/v1/buko/configurations", configHandler.List)
	api.HandleFunc("POST /api/v1/buko/configurations/export", configHandler.Export)
	api.HandleFunc("GET /api/v1/submissions", submissionHandler.List)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", middleware.Auth(cfg.JWTSecret)(api))
	mux.HandleFunc("GET /health", healthHandler.Liveness)
	mux.HandleFunc("GET /health/ready", healthHandler.Readiness)

	root := middleware.Tracing(middleware.Logging(middleware.Recovery(mux)))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
