package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/happyhipo/propcost/internal/history"
	"github.com/happyhipo/propcost/internal/logging"
	"github.com/happyhipo/propcost/internal/server"
	"github.com/happyhipo/propcost/internal/tracing"
	"github.com/happyhipo/propcost/pkg/constants"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := logging.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := tracing.Init("propcost", version)
	if err != nil {
		logger.Fatal("failed to initialize tracing",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	store := history.NewMemoryStore()

	var cache history.Cache
	if cfg.RedisAddress != "" {
		redisCache := history.NewRedisCache(cfg.RedisAddress)
		if err := redisCache.Ping(); err != nil {
			logger.Warn("redis unreachable, falling back to in-memory cache",
				zap.String("op", "main"),
				zap.String("address", cfg.RedisAddress),
				zap.Error(err),
			)
			cache = history.NewMemoryCache()
		} else {
			cache = redisCache
		}
	} else {
		cache = history.NewMemoryCache()
	}

	limiter := server.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow())
	defer limiter.Stop()

	handler := server.NewHandler(logger, cfg.BodySizeBytes(), version, store, cache, limiter)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting API server",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return
	case sig := <-quit:
		logger.Info("shutting down",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("error during tracing shutdown",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
