// cmd/worker/startup.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/storage"
)

// HealthChecker performs startup health checks.
type HealthChecker struct {
	redisClient *redis.Client
	storage     storage.BlobStorage
}

// startServices checks dependencies and starts the liveness endpoint.
func startServices(ctx context.Context, cfg *config.Config, blobs storage.BlobStorage) error {
	log.Info().Str("app", cfg.App.Name).Msg("Cover worker starting")

	checker := &HealthChecker{
		redisClient: redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}),
		storage: blobs,
	}
	defer checker.redisClient.Close()

	if err := checker.checkAll(ctx); err != nil {
		return err
	}

	go startHealthCheckServer(ctx, cfg.Worker.HealthAddr)
	return nil
}

func (h *HealthChecker) checkAll(ctx context.Context) error {
	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"Redis Connection", h.checkRedis},
		{"Blob Storage", h.storage.Ping},
	}

	for _, check := range checks {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := check.fn(ctx)
		cancel()
		if err != nil {
			log.Error().Err(err).Str("check", check.name).Msg("Health check failed")
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("Health check OK")
	}
	return nil
}

func (h *HealthChecker) checkRedis(ctx context.Context) error {
	return h.redisClient.Ping(ctx).Err()
}

// startHealthCheckServer serves /health and /ready until ctx is done.
func startHealthCheckServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthCheckHandler)
	mux.HandleFunc("/ready", readyCheckHandler)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	log.Info().Str("addr", addr).Msg("[Health] Starting health check server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("[Health] Failed to start")
	}
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"UP","service":"library-catalog-worker"}`))
}

func readyCheckHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"READY"}`))
}
