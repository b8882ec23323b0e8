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

	apphttp "bumpti_backend/internal/http"
	"bumpti_backend/internal/http/router"
	"bumpti_backend/internal/onboarding"
	"bumpti_backend/internal/places"
	"bumpti_backend/internal/theme"
	"bumpti_backend/platform/config"
	"bumpti_backend/platform/kv"
	"bumpti_backend/platform/logger"
	"bumpti_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

const kvPrefix = "bumpti:"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	store, health, closeStore := initStore(ctx, cfg, log)
	if closeStore != nil {
		defer closeStore()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	placesModule := places.NewModule(cfg, val, log)
	onboardingModule := onboarding.NewModule(store, log)
	themeModule := theme.NewModule()

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: health,
		Modules: []apphttp.Module{
			placesModule,
			onboardingModule,
			themeModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initStore connects to redis when REDIS_URL is set and falls back to an
// in-memory store otherwise.
func initStore(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (kv.Store, apphttp.HealthChecker, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; onboarding state is kept in memory")
		return kv.NewMemoryStore(), nil, nil
	}

	var client *redis.Client
	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		c, err := kv.NewRedisClient(ctx, cfg.GetRedisURL())
		if err != nil {
			return err
		}
		client = c
		return nil
	}); err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	log.Info("redis connection established")

	return kv.NewRedisStore(client, kvPrefix), redisHealth{client: client}, func() {
		_ = client.Close()
	}
}

type redisHealth struct {
	client *redis.Client
}

func (h redisHealth) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
