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

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shiprate/shiprate-server/internal/api/handler"
	"github.com/shiprate/shiprate-server/internal/config"
	"github.com/shiprate/shiprate-server/internal/service"
	"github.com/shiprate/shiprate-server/internal/store"
	"github.com/shiprate/shiprate-server/pkg/logger"
	"github.com/shiprate/shiprate-server/pkg/tracing"
)

// @title ShipRate API
// @version 1.0
// @description Ship rating service for maritime pilots.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(os.Getenv("SHIPRATE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.Mode, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Mode,
		}); err != nil {
			log.Fatal("init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()

	if cfg.Otel.Enabled {
		shutdown, err := tracing.Init(ctx, cfg.Otel.Endpoint, "shiprate-server")
		if err != nil {
			log.Fatal("init tracing", zap.Error(err))
		}
		defer shutdown(ctx)
	}

	repos, closeStore, err := store.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer closeStore(ctx)
	log.Info("store ready", zap.String("driver", cfg.Store.Driver))

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer cache.Close()
		if err := cache.Ping(ctx).Err(); err != nil {
			// Search just degrades to uncached reads.
			log.Warn("redis unreachable, search cache disabled", zap.Error(err))
			cache = nil
		}
	}

	if err := handler.RegisterValidations(); err != nil {
		log.Fatal("register validations", zap.Error(err))
	}

	h := handler.New(
		service.NewDashboardService(repos, cfg.Dashboard.Concurrency, log),
		service.NewShipService(repos.Ships, cache, cfg.Redis.SearchTTL),
		service.NewRatingService(repos),
		service.NewFeedbackService(repos.Feedback),
		service.NewAuthService(repos.Profiles, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		service.NewInstallHintProvider(cfg.Platform.Mode),
		log,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler.NewRouter(cfg, h),
	}

	go func() {
		log.Info("listening", zap.Int("port", cfg.Server.Port), zap.String("platform", cfg.Platform.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	log.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
