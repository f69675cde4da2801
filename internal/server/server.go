// Package server boots the HTTP API: config, database, cache, logging
// sinks, middleware stack, routes, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/medicare/app/routes"
	"github.com/shashiranjanraj/medicare/config"
	"github.com/shashiranjanraj/medicare/pkg/cache"
	"github.com/shashiranjanraj/medicare/pkg/database"
	"github.com/shashiranjanraj/medicare/pkg/logger"
	"github.com/shashiranjanraj/medicare/pkg/metrics"
	"github.com/shashiranjanraj/medicare/pkg/middleware"
	"github.com/shashiranjanraj/medicare/pkg/reqid"
	"github.com/shashiranjanraj/medicare/pkg/router"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 15 * time.Second

	rateLimitPerMinute = 200
)

// Run boots the API and blocks until SIGINT/SIGTERM, then drains
// in-flight requests before returning.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := cache.Connect(); err != nil {
		// The cache is an accelerator, not a dependency; keep serving.
		logger.Warn("redis unavailable, serving without cache", "error", err.Error())
	}

	closeLogSink := setupLogSink()
	defer closeLogSink()

	srv := &http.Server{
		Addr:         ":" + config.AppPort(),
		Handler:      buildRouter().Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func buildRouter() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.CORSOptionsFor(config.CORSOrigins())),
		middleware.RateLimit(rateLimitPerMinute, time.Minute),
	)

	r.HandleFunc("/metrics", metrics.Handler())
	routes.Register(r)

	return r
}

// setupLogSink attaches the async MongoDB log handler when LOG_MONGO_URI
// is configured. Returns the cleanup to run on shutdown.
func setupLogSink() func() {
	uri := config.LogMongoURI()
	if uri == "" {
		return func() {}
	}

	mongoHandler, err := logger.NewMongoHandler(uri, config.LogMongoDB(), config.LogMongoCollection())
	if err != nil {
		logger.Warn("mongo log sink unavailable", "error", err.Error())
		return func() {}
	}

	logger.UseHandler(logger.NewMultiHandler(currentHandler(), mongoHandler))
	logger.Info("mongo log sink attached", "db", config.LogMongoDB(), "collection", config.LogMongoCollection())

	return mongoHandler.Close
}

func currentHandler() slog.Handler {
	return logger.L.Handler()
}
